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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirseerhq/gist-relay/internal/config"
	relayerrors "github.com/sirseerhq/gist-relay/internal/errors"
	"github.com/sirseerhq/gist-relay/internal/github"
	"github.com/sirseerhq/gist-relay/internal/output"
	"github.com/spf13/cobra"
)

// sinceLayouts are the accepted formats for the --since flag. A bare date
// is interpreted as midnight UTC on that day.
var sinceLayouts = []string{
	"2006-01-02",
	github.DateFormat,
}

// fetchCmd represents the fetch command
func newFetchCommand() *cobra.Command {
	var (
		token      string
		outputFile string
		configPath string
		size       int
		since      string
		dateField  string
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch gists from the authenticated GitHub account",
		Long: `Fetch gists from the authenticated GitHub account and output in NDJSON format.

Both public and secret gists are returned, newest first by push date.
Pagination is handled transparently until the requested number of gists
has been collected, a date cutoff is reached, or no gists remain.

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No deadline here: a large account legitimately takes a
			// while, and pagination is strictly sequential.
			return runFetch(cmd.Context(), fetchFlags{
				token:      token,
				outputFile: outputFile,
				configPath: configPath,
				size:       size,
				since:      since,
				dateField:  dateField,
				pageSize:   pageSize,
			})
		},
	}

	// Define flags
	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: search standard locations)")

	// Collection flags
	cmd.Flags().IntVar(&size, "size", 0, "Maximum number of gists to fetch (0 = all)")
	cmd.Flags().StringVar(&since, "since", "", "Stop at gists pushed at or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateField, "date-field", "", "Gist field the --since cutoff applies to (default: pushedAt)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Gists per API request, 1-100 (default from config)")

	return cmd
}

// fetchFlags bundles the fetch command's flag values.
type fetchFlags struct {
	token      string
	outputFile string
	configPath string
	size       int
	since      string
	dateField  string
	pageSize   int
}

// runFetch executes the fetch command
func runFetch(ctx context.Context, flags fetchFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.pageSize > 0 {
		cfg.Defaults.PageSize = flags.pageSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Get GitHub token
	token := cfg.Token(flags.token)
	if token == "" {
		return fmt.Errorf("GitHub token not found. Set GITHUB_TOKEN or use --token flag")
	}

	// Parse the date cutoff, if any
	var cutoff time.Time
	if flags.since != "" {
		cutoff, err = parseSince(flags.since)
		if err != nil {
			return err
		}
	}

	// Create output writer
	var writer output.OutputWriter
	if flags.outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, fErr := output.NewFileWriter(flags.outputFile)
		if fErr != nil {
			return fmt.Errorf("failed to create output file: %w", fErr)
		}
		writer = fileWriter
	}
	defer writer.Close()

	// Create GitHub client
	client := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)

	opts := github.CollectOptions{
		Size:      flags.size,
		Cutoff:    cutoff,
		DateField: flags.dateField,
		PageSize:  cfg.Defaults.PageSize,
	}

	return fetchGists(ctx, client, writer, opts)
}

// fetchGists collects gists per opts and streams them to the writer.
func fetchGists(ctx context.Context, client github.Client, writer output.OutputWriter, opts github.CollectOptions) error {
	fmt.Fprintf(os.Stderr, "Fetching gists...")

	gists, err := github.CollectGists(ctx, client, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
		return err
	}

	for _, gist := range gists {
		if err := writer.Write(gist); err != nil {
			return fmt.Errorf("failed to write gist: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
	if len(gists) > 0 {
		fmt.Fprintf(os.Stderr, "Successfully fetched %d gists\n", len(gists))
	} else {
		fmt.Fprintf(os.Stderr, "No gists found\n")
	}

	return nil
}

// parseSince parses the --since flag value. Bare dates and full
// timestamps are both accepted.
func parseSince(value string) (time.Time, error) {
	for _, layout := range sinceLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --since date %q. Expected format: YYYY-MM-DD", value)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	// Check for specific error types
	if errors.Is(err, relayerrors.ErrInvalidToken) ||
		errors.Is(err, relayerrors.ErrRateLimit) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
