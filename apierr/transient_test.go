package apierr_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"
	"testing"

	"github.com/bodrovis/brasilapi/apierr"
)

// mock net.Error
type mockNetErr struct {
	msg     string
	timeout bool
}

func (m mockNetErr) Error() string { return m.msg }
func (m mockNetErr) Timeout() bool { return m.timeout }

func TestIsTransient_ContextErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"canceled", context.Canceled, false},
		{"wrapped deadline", fmt.Errorf("wrap: %w", context.DeadlineExceeded), true},
		{"wrapped canceled", fmt.Errorf("wrap: %w", context.Canceled), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apierr.IsTransient(tc.err)
			if got != tc.want {
				t.Fatalf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsTransient_NetErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"net timeout", mockNetErr{msg: "i/o timeout", timeout: true}, true},
		{"net non-timeout", mockNetErr{msg: "no such host"}, false},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"conn reset", fmt.Errorf("read: %w", syscall.ECONNRESET), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := apierr.IsTransient(tc.err); got != tc.want {
				t.Fatalf("IsTransient(%T) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsTransient_ThroughFromTransport(t *testing.T) {
	err := apierr.FromTransport(mockNetErr{msg: "dial tcp: i/o timeout", timeout: true})
	if !apierr.IsTransient(err) {
		t.Fatalf("IsTransient(transport timeout) = false, want true")
	}
}

func TestIsTransient_APIStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{http.StatusInternalServerError, true},
		{http.StatusBadRequest, false},
		{http.StatusNotFound, false},
		{http.StatusBadGateway, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("status_%d", tc.status), func(t *testing.T) {
			err := &apierr.APIError{Status: tc.status, Kind: apierr.Classify(tc.status)}
			if got := apierr.IsTransient(fmt.Errorf("wrap: %w", err)); got != tc.want {
				t.Fatalf("IsTransient(%d) = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestIsTransient_UnknownError(t *testing.T) {
	if apierr.IsTransient(errors.New("some build error")) {
		t.Fatalf("IsTransient(plain error) = true, want false")
	}
}
