package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bodrovis/brasilapi/apierr"
)

func TestExists(t *testing.T) {
	ok, err := exists(nil)
	if !ok || err != nil {
		t.Fatalf("exists(nil) = %v, %v; want true, nil", ok, err)
	}

	ok, err = exists(&apierr.APIError{Status: http.StatusNotFound, Kind: apierr.KindNotFound})
	if ok || err != nil {
		t.Fatalf("exists(404) = %v, %v; want false, nil", ok, err)
	}

	boom := &apierr.APIError{Status: http.StatusInternalServerError, Kind: apierr.KindInternalServerError}
	ok, err = exists(boom)
	if ok || !errors.Is(err, boom) {
		t.Fatalf("exists(500) = %v, %v; want false, %v", ok, err, boom)
	}

	plain := errors.New("decode")
	if _, err := exists(plain); err != plain {
		t.Fatalf("exists(plain) err = %v, want passthrough", err)
	}
}

func TestFindFirst(t *testing.T) {
	items := []int{3, 8, 10, 12}

	got, err := findFirst(items, func(n int) bool { return n%2 == 0 }, "none")
	if err != nil || got != 8 {
		t.Fatalf("findFirst = %d, %v; want 8, nil", got, err)
	}

	got, err = findFirst(items, func(n int) bool { return n > 100 }, "nothing above 100")
	if got != 0 {
		t.Fatalf("miss returned %d, want zero value", got)
	}
	var apiErr *apierr.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *apierr.APIError", err)
	}
	if apiErr.Kind != apierr.KindNotFound || apiErr.HasStatus() || apiErr.Message != "nothing above 100" {
		t.Fatalf("err = %+v", apiErr)
	}

	if _, err := findFirst[int](nil, func(int) bool { return true }, "empty"); !apierr.IsNotFound(err) {
		t.Fatalf("empty listing err = %v, want not found", err)
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		prefix   string
		segments []string
		want     string
	}{
		{"api/ddd/v1", nil, "api/ddd/v1"},
		{"api/ddd/v1", []string{"11"}, "api/ddd/v1/11"},
		{"api/cep/v2", []string{"a b"}, "api/cep/v2/a%20b"},
		{"api/cep/v2", []string{"../admin"}, "api/cep/v2/..%2Fadmin"},
		{"api/x", []string{"1", "2"}, "api/x/1/2"},
		{"api/x", []string{"?q=1#f"}, "api/x/%3Fq=1%23f"},
	}
	for _, tt := range tests {
		if got := joinPath(tt.prefix, tt.segments...); got != tt.want {
			t.Fatalf("joinPath(%q, %q) = %q, want %q", tt.prefix, tt.segments, got, tt.want)
		}
	}
}

func TestQueries(t *testing.T) {
	if q := tableQuery(0); q != nil {
		t.Fatalf("tableQuery(0) = %v, want nil", q)
	}
	if q := tableQuery(-3); q != nil {
		t.Fatalf("tableQuery(-3) = %v, want nil", q)
	}
	if got := tableQuery(271).Encode(); got != "tabela_referencia=271" {
		t.Fatalf("tableQuery(271) = %q", got)
	}

	if q := providersQuery[BookProvider](nil); q != nil {
		t.Fatalf("providersQuery(nil) = %v, want nil", q)
	}
	got := providersQuery([]BookProvider{BookProviderCBL, BookProviderOpenLibrary}).Get("providers")
	if got != "cbl,open-library" {
		t.Fatalf("providers = %q, want %q", got, "cbl,open-library")
	}
}
