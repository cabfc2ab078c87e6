package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/bodrovis/brasilapi/apierr"
)

// RequestIDHeader carries the per-request id also logged as request_id.
const RequestIDHeader = "X-Request-Id"

// get performs one GET and routes the outcome through apierr. On success the
// caller owns resp.Body; on failure the body has already been consumed.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set(RequestIDHeader, reqID)

	logger := c.logger.With(slog.String("request_id", reqID))
	logger.DebugContext(ctx, "brasilapi request", slog.String("path", path))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		apiErr := apierr.FromTransport(err)
		logFailure(ctx, logger, path, apiErr)
		return nil, apiErr
	}

	resp, err = apierr.FromResponse(resp)
	if err != nil {
		logFailure(ctx, logger, path, err)
		return nil, err
	}

	logger.DebugContext(ctx, "brasilapi response", slog.String("path", path), slog.Int("status", resp.StatusCode))
	return resp, nil
}

// getJSON decodes a 200 body into v. A body that does not fit v comes back
// as *apierr.DecodeError.
func (c *Client) getJSON(ctx context.Context, resource, path string, query url.Values, v any) error {
	resp, err := c.get(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &apierr.DecodeError{Resource: resource, Err: err}
	}
	return nil
}

// check runs the plain GET and reports whether the resource exists. The body
// is discarded.
func (c *Client) check(ctx context.Context, path string) (bool, error) {
	resp, err := c.get(ctx, path, nil)
	if err == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return exists(err)
}

func logFailure(ctx context.Context, logger *slog.Logger, path string, err error) {
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		logger.WarnContext(ctx, "brasilapi request failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	logger.WarnContext(ctx, "brasilapi request failed",
		slog.String("path", path),
		slog.Int("status", apiErr.Status),
		slog.String("kind", apiErr.Kind.String()),
		slog.String("error", apiErr.Error()),
	)
}

// exists collapses a fetch outcome into a boolean: NotFound is a plain false,
// any other failure is still an error.
func exists(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case apierr.IsNotFound(err):
		return false, nil
	default:
		return false, err
	}
}

// findFirst scans a fetched listing for the first match. Absence is reported
// as a locally built NotFound error.
func findFirst[T any](items []T, match func(T) bool, notFound string) (T, error) {
	for _, it := range items {
		if match(it) {
			return it, nil
		}
	}
	var zero T
	return zero, apierr.New(apierr.KindNotFound, notFound)
}

// joinPath appends escaped path segments to prefix.
func joinPath(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
