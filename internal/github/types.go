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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import (
	"fmt"
	"time"
)

// DateFormat is the timestamp layout used by the GitHub API for gist
// date fields (UTC, e.g. "2018-01-15T08:32:57Z").
const DateFormat = "2006-01-02T15:04:05Z"

// Gist represents a single gist as returned by the GitHub GraphQL API.
// This is the core data structure that gets serialized to NDJSON output.
// Timestamp fields are kept as the raw wire strings so records round-trip
// through output byte-for-byte; parsing happens only where a comparison
// is needed.
type Gist struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Name        string `json:"name"`
	PushedAt    string `json:"pushedAt"`
}

// DateField returns the named timestamp field of the gist. Only fields the
// gist query actually selects are valid; asking for anything else is an
// error rather than a silent zero value, because callers compare the result
// against a cutoff and a wrong field would produce wrong results without
// any visible failure.
func (g Gist) DateField(name string) (string, error) {
	switch name {
	case "pushedAt":
		return g.PushedAt, nil
	default:
		return "", fmt.Errorf("unknown gist date field %q", name)
	}
}

// GistPage represents one page of gists from a GraphQL query. It carries the
// gists for the current page together with the pagination information needed
// to fetch subsequent pages and the server-side total.
type GistPage struct {
	Gists       []Gist
	TotalCount  int
	EndCursor   string
	HasNextPage bool
}

// FetchOptions configures how a single page of gists is fetched.
type FetchOptions struct {
	// PageSize controls how many gists to fetch per page.
	// Defaults to 100 if not specified, which is also the maximum
	// permitted by GitHub's per-request node limit.
	PageSize int

	// After is the cursor for pagination.
	// Empty string fetches from the beginning.
	// Use GistPage.EndCursor from the previous response for the next page.
	After string
}

// CollectOptions configures CollectGists.
type CollectOptions struct {
	// Size is the target number of gists to collect. Zero or negative
	// means "everything": the total is resolved via Client.GistCount.
	Size int

	// Cutoff, when non-zero, stops collection at the first gist whose
	// date field is at or before it. That gist and everything after it
	// in server order is excluded.
	Cutoff time.Time

	// DateField names the gist field compared against Cutoff.
	// Defaults to "pushedAt". Must match the server's sort order for the
	// cutoff short-circuit to be correct.
	DateField string

	// PageSize is passed through to each page fetch.
	PageSize int
}

// Default values for fetch operations
const (
	defaultPageSize = 100
	maxPageSize     = 100
)

// defaultDateField is the gist field used for cutoff comparisons when the
// caller does not choose one. It matches the UPDATED_AT server ordering.
const defaultDateField = "pushedAt"
