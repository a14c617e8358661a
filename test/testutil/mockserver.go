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

// Package testutil provides common test helpers for gist-relay
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirseerhq/gist-relay/internal/github"
)

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server
	requests int32
}

// Requests returns the number of GraphQL requests the server has handled.
func (m *MockServer) Requests() int32 {
	return atomic.LoadInt32(&m.requests)
}

// graphqlRequest mirrors the wire shape sent by the GraphQL client.
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// NewGistServer creates a mock GraphQL server backed by the given gists.
// It answers viewer, count, and paginated gist queries, honoring the page
// size and cursor carried in the query variables.
func NewGistServer(t *testing.T, gists []github.Gist) *MockServer {
	t.Helper()
	mock := &MockServer{}

	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requests, 1)

		var req graphqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode GraphQL request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.Contains(req.Query, "login"):
			fmt.Fprint(w, `{"data":{"viewer":{"login":"mockuser"}}}`)
		case !strings.Contains(req.Query, "edges"):
			fmt.Fprintf(w, `{"data":{"viewer":{"gists":{"totalCount":%d}}}}`, len(gists))
		default:
			_ = json.NewEncoder(w).Encode(gistPageResponse(gists, req.Variables))
		}
	}))
	t.Cleanup(mock.Close)

	return mock
}

// gistPageResponse builds one page of the gist connection, starting after
// the cursor in the variables and serving at most "first" gists.
func gistPageResponse(gists []github.Gist, variables map[string]interface{}) map[string]interface{} {
	start := 0
	if after, ok := variables["after"].(string); ok && after != "" {
		fmt.Sscanf(after, "cursor:%d", &start)
		start++
	}

	pageSize := len(gists)
	if first, ok := variables["first"].(float64); ok && first > 0 {
		pageSize = int(first)
	}

	end := start + pageSize
	if end > len(gists) {
		end = len(gists)
	}

	edges := make([]map[string]interface{}, 0, end-start)
	for i := start; i < end; i++ {
		edges = append(edges, map[string]interface{}{
			"node": map[string]interface{}{
				"id":          gists[i].ID,
				"description": gists[i].Description,
				"name":        gists[i].Name,
				"pushedAt":    gists[i].PushedAt,
			},
			"cursor": fmt.Sprintf("cursor:%d", i),
		})
	}

	endCursor := ""
	if end > start {
		endCursor = fmt.Sprintf("cursor:%d", end-1)
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"viewer": map[string]interface{}{
				"gists": map[string]interface{}{
					"totalCount": len(gists),
					"edges":      edges,
					"pageInfo": map[string]interface{}{
						"endCursor":   endCursor,
						"hasNextPage": end < len(gists),
					},
				},
			},
		},
	}
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	mock := &MockServer{}
	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requests, 1)
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	}))
	t.Cleanup(mock.Close)
	return mock
}

// NewGraphQLErrorServer creates a mock server that returns a 200 response
// whose body carries only GraphQL errors, with no data payload.
func NewGraphQLErrorServer(t *testing.T, message string) *MockServer {
	t.Helper()
	mock := &MockServer{}
	mock.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&mock.requests, 1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{{"message": message}},
		})
	}))
	t.Cleanup(mock.Close)
	return mock
}

// AssertGraphQLRequest validates a GraphQL request structure
func AssertGraphQLRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.Method != "POST" {
		t.Errorf("Expected POST method, got: %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got: %s", ct)
	}
}
