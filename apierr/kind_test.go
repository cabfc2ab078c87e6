package apierr_test

import (
	"testing"

	"github.com/bodrovis/brasilapi/apierr"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		status int
		want   apierr.Kind
	}{
		{404, apierr.KindNotFound},
		{500, apierr.KindInternalServerError},
		{400, apierr.KindBadRequest},
		{0, apierr.KindUnexpected},
		{200, apierr.KindUnexpected},
		{401, apierr.KindUnexpected},
		{429, apierr.KindUnexpected},
		{502, apierr.KindUnexpected},
		{503, apierr.KindUnexpected},
		{-1, apierr.KindUnexpected},
	}
	for _, tc := range cases {
		got := apierr.Classify(tc.status)
		if got != tc.want {
			t.Fatalf("Classify(%d) = %v, want %v", tc.status, got, tc.want)
		}
		// pure: same input, same answer
		if again := apierr.Classify(tc.status); again != got {
			t.Fatalf("Classify(%d) not stable", tc.status)
		}
	}
}

func TestKind_String(t *testing.T) {
	cases := map[apierr.Kind]string{
		apierr.KindUnexpected:          "unexpected",
		apierr.KindNotFound:            "not_found",
		apierr.KindBadRequest:          "bad_request",
		apierr.KindInternalServerError: "internal_server_error",
		apierr.Kind(42):                "unexpected",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestKind_ZeroValueIsUnexpected(t *testing.T) {
	var k apierr.Kind
	if k != apierr.KindUnexpected {
		t.Fatalf("zero Kind = %v, want %v", k, apierr.KindUnexpected)
	}
	if got := (&apierr.APIError{}).Kind; got != apierr.KindUnexpected {
		t.Fatalf("zero APIError.Kind = %v, want %v", got, apierr.KindUnexpected)
	}
}
