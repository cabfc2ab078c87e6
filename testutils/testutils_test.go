package testutils_test

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodrovis/brasilapi/testutils"
)

func TestUpstream_RecordsAndAnswers(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusTeapot, `{"ok":false}`)

	req, err := http.NewRequest(http.MethodGet, up.URL+"/api/x/v1/1?y=2", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("User-Agent", "probe")
	resp, err := up.Client().Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusTeapot)
	}
	if string(body) != `{"ok":false}` {
		t.Fatalf("body = %q", body)
	}
	if got := up.LastURI(); got != "/api/x/v1/1?y=2" {
		t.Fatalf("LastURI = %q", got)
	}
	reqs := up.Requests()
	if len(reqs) != 1 || reqs[0].Method != http.MethodGet || reqs[0].Header.Get("User-Agent") != "probe" {
		t.Fatalf("requests = %+v", reqs)
	}
}

func TestUpstream_LastURIEmpty(t *testing.T) {
	up := testutils.NewUpstream(t, http.StatusOK, "")
	if got := up.LastURI(); got != "" {
		t.Fatalf("LastURI = %q, want empty", got)
	}
}

func TestFixture(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "testdata"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "testdata", "a.json"), []byte(`[1]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if got := testutils.Fixture(t, "a.json"); got != "[1]" {
		t.Fatalf("Fixture = %q", got)
	}
}

func TestSkipUnlessLive_Skips(t *testing.T) {
	t.Setenv(testutils.LiveEnv, "0")

	ran := false
	t.Run("inner", func(t *testing.T) {
		testutils.SkipUnlessLive(t)
		ran = true
	})
	if ran {
		t.Fatalf("expected inner test to be skipped")
	}
}
