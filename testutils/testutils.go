// Package testutils holds helpers shared by the package tests: canned
// upstream servers, fixture loading and live-test gating.
package testutils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bodrovis/brasilapi/utils"
)

// LiveEnv enables tests that hit the real BrasilAPI.
const LiveEnv = "BRASILAPI_LIVE"

// SkipUnlessLive skips t unless LiveEnv is truthy, reading .env first.
func SkipUnlessLive(t testing.TB) {
	t.Helper()
	_ = utils.LoadDotEnv()
	on, err := utils.EnvBool(LiveEnv)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !on {
		t.Skipf("set %s=1 to run live tests", LiveEnv)
	}
}

// Fixture returns testdata/<name> relative to the calling package.
func Fixture(t testing.TB, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return string(b)
}

// Request is what Upstream saw for one call.
type Request struct {
	Method string
	URI    string
	Header http.Header
}

// Upstream is a canned stand-in for BrasilAPI. Every request is recorded
// and answered with Status and Body.
type Upstream struct {
	*httptest.Server

	status int
	body   string

	mu       sync.Mutex
	requests []Request
}

// NewUpstream starts an Upstream closed on test cleanup.
func NewUpstream(t testing.TB, status int, body string) *Upstream {
	t.Helper()
	u := &Upstream{status: status, body: body}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Close)
	return u
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	u.requests = append(u.requests, Request{Method: r.Method, URI: r.RequestURI, Header: r.Header.Clone()})
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(u.status)
	_, _ = w.Write([]byte(u.body))
}

// Requests returns a snapshot of everything received so far.
func (u *Upstream) Requests() []Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Request(nil), u.requests...)
}

// LastURI is the request URI of the most recent call, or "".
func (u *Upstream) LastURI() string {
	reqs := u.Requests()
	if len(reqs) == 0 {
		return ""
	}
	return reqs[len(reqs)-1].URI
}
