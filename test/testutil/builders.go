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

package testutil

import (
	"fmt"
	"time"

	"github.com/sirseerhq/gist-relay/internal/github"
)

// GenerateGists builds count gists with push dates descending one day at a
// time from the given start, matching the order the API returns them in.
func GenerateGists(count int, start time.Time) []github.Gist {
	gists := make([]github.Gist, 0, count)
	for i := 0; i < count; i++ {
		gists = append(gists, github.Gist{
			ID:          fmt.Sprintf("G_%d", i+1),
			Description: fmt.Sprintf("gist %d", i+1),
			Name:        fmt.Sprintf("file%d.md", i+1),
			PushedAt:    start.AddDate(0, 0, -i).UTC().Format(github.DateFormat),
		})
	}
	return gists
}
