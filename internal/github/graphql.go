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
	"io"
	"net/http"
	"time"

	"github.com/shurcooL/graphql"
	relayerrors "github.com/sirseerhq/gist-relay/internal/errors"
	"github.com/sirseerhq/gist-relay/internal/giterror"
	"github.com/sirseerhq/gist-relay/pkg/version"
)

// GraphQLClient implements the GitHub Client interface using the GraphQL API.
// Queries are built from typed structs with a query-variables map, so opaque
// values such as pagination cursors are transported as variables and never
// interpolated into the query text.
type GraphQLClient struct {
	client    *graphql.Client
	token     string
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token
// and endpoint. The endpoint is explicit rather than ambient so GitHub
// Enterprise deployments can point the client elsewhere. The client is
// configured with:
//   - Authentication via the provided token
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling for API performance
//
// No retries, rate-limit waiting, or timeouts are layered in; each call is a
// single round trip and any failure surfaces immediately to the caller.
func NewGraphQLClient(token, endpoint string) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			token: token,
			base:  transport,
		},
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		token:     token,
		inspector: giterror.NewInspector(),
	}
}

// Viewer returns the login of the authenticated account.
func (c *GraphQLClient) Viewer(ctx context.Context) (string, error) {
	var query struct {
		Viewer struct {
			Login graphql.String
		}
	}

	if err := c.client.Query(ctx, &query, nil); err != nil {
		return "", c.mapError(err)
	}

	login := string(query.Viewer.Login)
	if login == "" {
		return "", fmt.Errorf("viewer login missing from response: %w", relayerrors.ErrNoData)
	}

	return login, nil
}

// GistCount returns the total number of gists across all privacy levels
// without fetching any gist data. Used to size full-account collections.
func (c *GraphQLClient) GistCount(ctx context.Context) (int, error) {
	var query struct {
		Viewer struct {
			Gists struct {
				TotalCount graphql.Int
			} `graphql:"gists(privacy: ALL)"`
		}
	}

	if err := c.client.Query(ctx, &query, nil); err != nil {
		return 0, c.mapError(err)
	}

	return int(query.Viewer.Gists.TotalCount), nil
}

// FetchGists fetches a single page of the viewer's gists, public and secret,
// ordered by last-push time descending. The cursor travels as a GraphQL
// variable; a null $after selects the first page.
func (c *GraphQLClient) FetchGists(ctx context.Context, opts FetchOptions) (*GistPage, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	// GitHub enforces a hard per-request node limit.
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	var query struct {
		Viewer struct {
			Gists struct {
				TotalCount graphql.Int
				Edges      []struct {
					Node struct {
						ID          graphql.String
						Description graphql.String
						Name        graphql.String
						PushedAt    graphql.String
					}
					Cursor graphql.String
				}
				PageInfo struct {
					EndCursor   graphql.String
					HasNextPage graphql.Boolean
				}
			} `graphql:"gists(first: $first, after: $after, privacy: ALL, orderBy: {field: UPDATED_AT, direction: DESC})"`
		}
	}

	variables := map[string]interface{}{
		"first": graphql.Int(int32(pageSize)), // #nosec G115 - pageSize is capped at 100
		"after": (*graphql.String)(nil),
	}
	if opts.After != "" {
		variables["after"] = graphql.NewString(graphql.String(opts.After))
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err)
	}

	gists := query.Viewer.Gists
	page := &GistPage{
		Gists:       make([]Gist, 0, len(gists.Edges)),
		TotalCount:  int(gists.TotalCount),
		EndCursor:   string(gists.PageInfo.EndCursor),
		HasNextPage: bool(gists.PageInfo.HasNextPage),
	}

	for _, edge := range gists.Edges {
		page.Gists = append(page.Gists, Gist{
			ID:          string(edge.Node.ID),
			Description: string(edge.Node.Description),
			Name:        string(edge.Node.Name),
			PushedAt:    string(edge.Node.PushedAt),
		})
	}

	return page, nil
}

// mapError maps GraphQL errors to our domain errors with actionable messages
func (c *GraphQLClient) mapError(err error) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if c.inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", relayerrors.ErrRateLimit)
	}

	if c.inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", relayerrors.ErrInvalidToken)
	}

	if c.inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	// A response that reached us but carried no data payload, e.g. an
	// errors-only GraphQL body. Keep the original message intact.
	if c.inspector.IsNoDataError(err) {
		return fmt.Errorf("github api returned no data: %v: %w", err, relayerrors.ErrNoData)
	}

	return fmt.Errorf("github api request failed: %w", err)
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// authTransport adds authentication header and safety limits to HTTP requests
type authTransport struct {
	token string
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("User-Agent", fmt.Sprintf("gist-relay/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Apply response size limit (10MB)
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024,
		}
	}

	return resp, nil
}
