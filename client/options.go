package client

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Option tweaks a Client during NewClient.
type Option func(*Client) error

// WithHTTPClient uses a copy of hc as the underlying client (e.g. srv.Client()
// in tests). hc itself is never modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client is nil")
		}
		c.baseHTTP = hc
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		ua = strings.TrimSpace(ua)
		if ua == "" {
			return fmt.Errorf("user agent is empty")
		}
		c.UserAgent = ua
		return nil
	}
}

// WithHTTPTimeout sets http.Client.Timeout, overriding Config.Timeout and
// the timeout of a client passed to WithHTTPClient; zero disables it.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("negative timeout %v", d)
		}
		c.timeout = &d
		return nil
	}
}

// WithLogger routes request logs to l. Without it the client logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return fmt.Errorf("logger is nil")
		}
		c.logger = l
		return nil
	}
}

// WithTracing wraps the transport with OpenTelemetry instrumentation. Without
// opts the global tracer and meter providers are used.
func WithTracing(opts ...otelhttp.Option) Option {
	return func(c *Client) error {
		c.tracing = true
		c.traceOpts = append(c.traceOpts, opts...)
		return nil
	}
}
