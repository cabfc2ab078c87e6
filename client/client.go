package client

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// DefaultBaseURL is the production BrasilAPI host. NewClient never falls
	// back to it; pass it explicitly (config.Load does).
	DefaultBaseURL = "https://brasilapi.com.br/"

	// DefaultUserAgent is sent when neither Config nor WithUserAgent set one.
	DefaultUserAgent = "brasilapi-go/0.1"
)

// Config holds the per-instance settings. BaseURL is required so the same
// client can target a local test server. A non-zero Timeout also applies to a
// client passed to WithHTTPClient.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client talks to one BrasilAPI deployment. It holds no per-call state and
// is safe for concurrent use once constructed.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	logger    *slog.Logger
	tracing   bool
	traceOpts []otelhttp.Option

	// recorded by options, resolved once in NewClient
	baseHTTP *http.Client
	timeout  *time.Duration
}

func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		BaseURL:   base,
		UserAgent: DefaultUserAgent,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if ua := strings.TrimSpace(cfg.UserAgent); ua != "" {
		c.UserAgent = ua
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.HTTPClient = c.buildHTTPClient(cfg.Timeout)
	return c, nil
}

// buildHTTPClient resolves the recorded options into the client used for
// requests. A caller-supplied *http.Client is copied, never mutated.
func (c *Client) buildHTTPClient(cfgTimeout time.Duration) *http.Client {
	hc := &http.Client{}
	if c.baseHTTP != nil {
		cp := *c.baseHTTP
		hc = &cp
	}

	switch {
	case c.timeout != nil:
		hc.Timeout = *c.timeout
	case cfgTimeout != 0:
		hc.Timeout = cfgTimeout
	}

	if c.tracing {
		rt := hc.Transport
		if rt == nil {
			rt = http.DefaultTransport
		}
		hc.Transport = otelhttp.NewTransport(rt, c.traceOpts...)
	}
	return hc
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("base url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q: need absolute http(s) url", raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}
