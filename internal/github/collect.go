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
)

// CollectGists fetches gists page by page until a target size is reached, a
// date cutoff is crossed, or the server reports no more pages. It is a
// convenience wrapper over Client.FetchGists that handles pagination
// automatically.
//
// When opts.Size is unset the total is resolved via Client.GistCount before
// any page is fetched; an account with no gists returns an empty slice
// without touching the gists endpoint. When opts.Cutoff is set, the first
// gist whose date field is at or before the cutoff ends collection: that
// gist, the rest of its page, and all later pages are excluded. A gist whose
// date equals the cutoff exactly is excluded.
//
// Correctness of the cutoff short-circuit depends on the server returning
// gists in descending order of the compared field. FetchGists orders by
// UPDATED_AT descending, which tracks pushedAt; choosing a DateField the
// query does not select fails instead of silently mis-filtering.
//
// Pagination is strictly sequential because each request needs the cursor
// from the previous one. A failure mid-pagination discards everything
// accumulated in this call.
func CollectGists(ctx context.Context, client Client, opts CollectOptions) ([]Gist, error) {
	dateField := opts.DateField
	if dateField == "" {
		dateField = defaultDateField
	}

	size := opts.Size
	if size <= 0 {
		total, err := client.GistCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve gist count: %w", err)
		}
		size = total
	}

	if size == 0 {
		return []Gist{}, nil
	}

	// The requested size is a target, not a promise of available data, so
	// it must not drive the initial allocation. Start with one page's worth
	// and let append grow the slice as results actually arrive.
	capacity := size
	if capacity > maxPageSize {
		capacity = maxPageSize
	}
	gists := make([]Gist, 0, capacity)

	cursor := ""
	for {
		page, err := client.FetchGists(ctx, FetchOptions{
			PageSize: opts.PageSize,
			After:    cursor,
		})
		if err != nil {
			return nil, err
		}

		for _, gist := range page.Gists {
			raw, err := gist.DateField(dateField)
			if err != nil {
				return nil, err
			}

			date, err := time.Parse(DateFormat, raw)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s of gist %s: %w", dateField, gist.ID, err)
			}

			// Server order is descending, so the first gist at or
			// before the cutoff ends the whole collection.
			if !opts.Cutoff.IsZero() && !date.After(opts.Cutoff) {
				return gists, nil
			}

			// Checked before appending, so the result is exactly
			// the target size when the cap fires.
			if len(gists) >= size {
				return gists, nil
			}

			gists = append(gists, gist)
		}

		if !page.HasNextPage {
			break
		}
		cursor = page.EndCursor
	}

	return gists, nil
}
