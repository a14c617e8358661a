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

// Package output provides utilities for writing gist records in NDJSON
// (Newline Delimited JSON) format. Each line is one gist, encoded with the
// upstream API's field names, which makes the output easy to pipe into jq
// or bulk-load elsewhere.
//
// The primary type is Writer, which provides thread-safe writing of JSON
// records to an io.Writer or file.
//
// Example usage:
//
//	w, err := output.NewFileWriter("gists.ndjson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	for _, gist := range gists {
//	    if err := w.Write(gist); err != nil {
//	        log.Printf("Failed to write gist: %v", err)
//	    }
//	}
package output
