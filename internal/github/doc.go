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

// Package github provides a client for interacting with GitHub's GraphQL API
// to fetch the authenticated user's gists. It abstracts the GraphQL queries
// behind a small interface with three read operations and a pagination-aware
// collector on top.
//
// The package includes:
//   - A Client interface for identity lookup, gist counting, and page fetching
//   - A GraphQL implementation using the shurcooL/graphql library
//   - CollectGists, which pages through gists with size and date-cutoff limits
//   - A mock client for testing
//
// Basic usage:
//
//	client := github.NewGraphQLClient("your-github-token", "https://api.github.com/graphql")
//	gists, err := github.CollectGists(ctx, client, github.CollectOptions{
//	    Size: 50,
//	})
//	if err != nil {
//	    // Handle error
//	}
//	for _, gist := range gists {
//	    // Process gist
//	}
package github
