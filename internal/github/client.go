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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// Viewer returns the login of the account the token authenticates as.
	Viewer(ctx context.Context) (string, error)

	// GistCount returns the total number of gists (public and secret)
	// in the authenticated account, without fetching any gist data.
	GistCount(ctx context.Context) (int, error)

	// FetchGists retrieves a single page of the viewer's gists, ordered by
	// last-push time descending. It supports cursor-based pagination through
	// the opts.After parameter; the page size can be configured via
	// opts.PageSize. No local pagination happens here.
	FetchGists(ctx context.Context, opts FetchOptions) (*GistPage, error)
}
