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
	"fmt"
	"io"

	"github.com/sirseerhq/gist-relay/internal/config"
	"github.com/sirseerhq/gist-relay/internal/github"
	"github.com/spf13/cobra"
)

// newWhoamiCommand verifies the token by resolving the authenticated login.
func newWhoamiCommand() *cobra.Command {
	var (
		token      string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Print the login of the authenticated GitHub user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			resolved := cfg.Token(token)
			if resolved == "" {
				return fmt.Errorf("GitHub token not found. Set GITHUB_TOKEN or use --token flag")
			}

			client := github.NewGraphQLClient(resolved, cfg.GitHub.GraphQLEndpoint)
			return runWhoami(cmd.Context(), client, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: search standard locations)")

	return cmd
}

// runWhoami resolves the authenticated login and prints it.
func runWhoami(ctx context.Context, client github.Client, out io.Writer) error {
	login, err := client.Viewer(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, login)
	return nil
}
