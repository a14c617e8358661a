package giterror

import (
	"errors"
	"fmt"
	"testing"
)

func TestGitHubErrorInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "401 unauthorized",
			err:  errors.New("401 Unauthorized"),
			want: true,
		},
		{
			name: "403 forbidden",
			err:  errors.New("403 Forbidden"),
			want: true,
		},
		{
			name: "bad credentials",
			err:  errors.New("Bad credentials"),
			want: true,
		},
		{
			name: "authentication required",
			err:  errors.New("Authentication required"),
			want: true,
		},
		{
			name: "wrapped auth error",
			err:  fmt.Errorf("failed to query: %w", errors.New("401 Unauthorized")),
			want: true,
		},
		{
			name: "not an auth error",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsRateLimitError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "rate limit exceeded",
			err:  errors.New("API rate limit exceeded"),
			want: true,
		},
		{
			name: "429 too many requests",
			err:  errors.New("429 Too Many Requests"),
			want: true,
		},
		{
			name: "rate limit message",
			err:  errors.New("You have exceeded a secondary rate limit"),
			want: true,
		},
		{
			name: "wrapped rate limit error",
			err:  fmt.Errorf("github api error: %w", errors.New("API rate limit exceeded")),
			want: true,
		},
		{
			name: "not a rate limit error",
			err:  errors.New("timeout occurred"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsRateLimitError(tt.err); got != tt.want {
				t.Errorf("IsRateLimitError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "connection refused",
			err:  errors.New("dial tcp 127.0.0.1:443: connection refused"),
			want: true,
		},
		{
			name: "no such host",
			err:  errors.New("dial tcp: lookup api.github.com: no such host"),
			want: true,
		},
		{
			name: "timeout",
			err:  errors.New("request timeout after 30s"),
			want: true,
		},
		{
			name: "temporary failure",
			err:  errors.New("temporary failure in name resolution"),
			want: true,
		},
		{
			name: "tls handshake error",
			err:  errors.New("tls handshake timeout"),
			want: true,
		},
		{
			name: "network unreachable",
			err:  errors.New("network is unreachable"),
			want: true,
		},
		{
			name: "wrapped network error",
			err:  fmt.Errorf("failed to connect: %w", errors.New("connection refused")),
			want: true,
		},
		{
			name: "not a network error",
			err:  errors.New("invalid json response"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGitHubErrorInspector_IsNoDataError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "graphql errors-only response",
			err:  errors.New("Something went wrong while executing your query"),
			want: true,
		},
		{
			name: "non-200 status body",
			err:  errors.New(`non-200 OK status code: 502 Bad Gateway body: ""`),
			want: true,
		},
		{
			name: "explicit no data",
			err:  errors.New("no data available from github"),
			want: true,
		},
		{
			name: "ordinary error",
			err:  errors.New("invalid query syntax"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNoDataError(tt.err); got != tt.want {
				t.Errorf("IsNoDataError() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Custom error types for testing ErrorChainInspector
type authError struct{}

func (authError) Error() string     { return "custom auth error" }
func (authError) IsAuthError() bool { return true }

type rateLimitError struct{}

func (rateLimitError) Error() string          { return "custom rate limit error" }
func (rateLimitError) IsRateLimitError() bool { return true }

func TestErrorChainInspector(t *testing.T) {
	baseInspector := NewInspector()
	chainInspector := NewErrorChainInspector(baseInspector)

	tests := []struct {
		name   string
		err    error
		method string
		want   bool
	}{
		{
			name:   "custom auth error type",
			err:    authError{},
			method: "auth",
			want:   true,
		},
		{
			name:   "wrapped custom auth error",
			err:    fmt.Errorf("operation failed: %w", authError{}),
			method: "auth",
			want:   true,
		},
		{
			name:   "custom rate limit error type",
			err:    rateLimitError{},
			method: "ratelimit",
			want:   true,
		},
		{
			name:   "falls back to string checking",
			err:    errors.New("401 Unauthorized"),
			method: "auth",
			want:   true,
		},
		{
			name:   "no match in chain or string",
			err:    errors.New("some other error"),
			method: "auth",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			switch tt.method {
			case "auth":
				got = chainInspector.IsAuthError(tt.err)
			case "ratelimit":
				got = chainInspector.IsRateLimitError(tt.err)
			}
			if got != tt.want {
				t.Errorf("ErrorChainInspector.%s() = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}
