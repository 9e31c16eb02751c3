package netutil

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return false }

func TestShouldRetry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "net timeout", err: timeoutErr{}, want: true},
		{name: "dial failure", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "read failure", err: &net.OpError{Op: "read", Err: errors.New("connection reset")}, want: false},
		{name: "url wrapping timeout", err: &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: timeoutErr{}}, want: true},
		{name: "url wrapping plain", err: &url.Error{Op: "Post", URL: "https://api.telegram.org", Err: errors.New("no")}, want: false},
		{name: "context canceled", err: context.Canceled, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldRetry(tt.err); got != tt.want {
				t.Errorf("ShouldRetry(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
