// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import (
	"context"
	"fmt"
	"time"

	relayerrors "github.com/sirseerhq/gist-relay/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// It serves its Gists slice in pages, advancing a synthetic cursor the same
// way the real API does.
type MockClient struct {
	// Login returned by Viewer
	Login string

	// Gists served by FetchGists, in server order
	Gists []Gist

	// Error to return from every call
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool
	ShouldFailNoData  bool

	// Track calls for verification
	FetchCalls int
	CountCalls int
	LastOpts   FetchOptions
	LastCtx    context.Context
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Login: "octocat",
		Gists: generateTestGists(),
	}
}

// Viewer implements the Client interface
func (m *MockClient) Viewer(ctx context.Context) (string, error) {
	m.LastCtx = ctx
	if err := m.fail(ctx); err != nil {
		return "", err
	}
	return m.Login, nil
}

// GistCount implements the Client interface
func (m *MockClient) GistCount(ctx context.Context) (int, error) {
	m.CountCalls++
	m.LastCtx = ctx
	if err := m.fail(ctx); err != nil {
		return 0, err
	}
	return len(m.Gists), nil
}

// FetchGists implements the Client interface. Cursors are stringified offsets
// into the Gists slice, opaque to callers just like the real thing.
func (m *MockClient) FetchGists(ctx context.Context, opts FetchOptions) (*GistPage, error) {
	m.FetchCalls++
	m.LastOpts = opts
	m.LastCtx = ctx

	if err := m.fail(ctx); err != nil {
		return nil, err
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	start := 0
	if opts.After != "" {
		if _, err := fmt.Sscanf(opts.After, "offset:%d", &start); err != nil {
			return nil, fmt.Errorf("malformed cursor %q: %w", opts.After, err)
		}
	}
	if start > len(m.Gists) {
		start = len(m.Gists)
	}

	end := start + pageSize
	if end > len(m.Gists) {
		end = len(m.Gists)
	}

	return &GistPage{
		Gists:       m.Gists[start:end],
		TotalCount:  len(m.Gists),
		EndCursor:   fmt.Sprintf("offset:%d", end),
		HasNextPage: end < len(m.Gists),
	}, nil
}

// fail simulates the configured error conditions.
func (m *MockClient) fail(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", relayerrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", relayerrors.ErrNetworkFailure)
	}
	if m.ShouldFailNoData {
		return fmt.Errorf("github api returned no data: %w", relayerrors.ErrNoData)
	}
	return m.Error
}

// generateTestGists creates sample gist data for testing
func generateTestGists() []Gist {
	now := time.Now().UTC()

	gists := make([]Gist, 0, 3)
	for i := 0; i < 3; i++ {
		gists = append(gists, Gist{
			ID:          fmt.Sprintf("G_%04d", i+1),
			Description: fmt.Sprintf("test gist %d", i+1),
			Name:        fmt.Sprintf("snippet-%d.go", i+1),
			PushedAt:    now.Add(-time.Duration(i) * 24 * time.Hour).Format(DateFormat),
		})
	}
	return gists
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithGists sets specific gists to serve
func WithGists(gists []Gist) MockClientOption {
	return func(m *MockClient) {
		m.Gists = gists
	}
}

// WithLogin sets the viewer login to return
func WithLogin(login string) MockClientOption {
	return func(m *MockClient) {
		m.Login = login
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
