package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	relayerrors "github.com/sirseerhq/gist-relay/internal/errors"
	"github.com/sirseerhq/gist-relay/internal/github"
	"github.com/sirseerhq/gist-relay/internal/output"
)

func TestParseSince(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		check   func(time.Time) bool
	}{
		{
			input:   "2024-01-15",
			wantErr: false,
			check: func(t time.Time) bool {
				return t.Year() == 2024 && t.Month() == 1 && t.Day() == 15 &&
					t.Hour() == 0 && t.Minute() == 0
			},
		},
		{
			input:   "2024-01-15T10:30:00Z",
			wantErr: false,
			check: func(t time.Time) bool {
				return t.Year() == 2024 && t.Month() == 1 && t.Day() == 15 &&
					t.Hour() == 10 && t.Minute() == 30
			},
		},
		{
			input:   "invalid",
			wantErr: true,
		},
		{
			input:   "",
			wantErr: true,
		},
		{
			input:   "15/01/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		got, err := parseSince(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSince(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && tt.check != nil {
			if !tt.check(got) {
				t.Errorf("parseSince(%q) = %v, failed check", tt.input, got)
			}
		}
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "nil error",
			err:      nil,
			wantCode: 0,
		},
		{
			name:     "general error",
			err:      os.ErrClosed,
			wantCode: 1,
		},
		{
			name:     "invalid token",
			err:      relayerrors.ErrInvalidToken,
			wantCode: 2,
		},
		{
			name:     "rate limit",
			err:      relayerrors.ErrRateLimit,
			wantCode: 2,
		},
		{
			name:     "network failure",
			err:      relayerrors.ErrNetworkFailure,
			wantCode: 3,
		},
		{
			name:     "wrapped invalid token",
			err:      fmt.Errorf("request failed: %w", relayerrors.ErrInvalidToken),
			wantCode: 2,
		},
		{
			name:     "wrapped network failure",
			err:      fmt.Errorf("request failed: %w", relayerrors.ErrNetworkFailure),
			wantCode: 3,
		},
		{
			name:     "no data",
			err:      relayerrors.ErrNoData,
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErrorToExitCode(tt.err)
			if got != tt.wantCode {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.wantCode)
			}
		})
	}
}

func TestFetchGists(t *testing.T) {
	gists := []github.Gist{
		{ID: "G_1", Description: "march", Name: "a.md", PushedAt: "2018-03-01T00:00:00Z"},
		{ID: "G_2", Description: "february", Name: "b.md", PushedAt: "2018-02-01T00:00:00Z"},
		{ID: "G_3", Description: "january", Name: "c.md", PushedAt: "2018-01-01T00:00:00Z"},
	}
	client := github.NewMockClientWithOptions(github.WithGists(gists))

	var buf bytes.Buffer
	writer := output.NewWriter(&buf)

	opts := github.CollectOptions{Size: 2}
	if err := fetchGists(context.Background(), client, writer, opts); err != nil {
		t.Fatalf("fetchGists() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("wrote %d lines, want 2", len(lines))
	}

	var first github.Gist
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not valid JSON: %v", err)
	}
	if first.ID != "G_1" {
		t.Errorf("first gist ID = %q, want G_1", first.ID)
	}

	// Fetch runs on the caller's context as-is; no deadline is layered in.
	if _, ok := client.LastCtx.Deadline(); ok {
		t.Error("expected no deadline on the context reaching the client")
	}
}

func TestFetchGists_EmptyAccount(t *testing.T) {
	client := github.NewMockClientWithOptions(github.WithGists(nil))

	var buf bytes.Buffer
	writer := output.NewWriter(&buf)

	if err := fetchGists(context.Background(), client, writer, github.CollectOptions{}); err != nil {
		t.Fatalf("fetchGists() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty account, got %q", buf.String())
	}
}

func TestFetchGists_PropagatesError(t *testing.T) {
	client := github.NewMockClientWithOptions(github.WithAuthFailure())

	var buf bytes.Buffer
	writer := output.NewWriter(&buf)

	err := fetchGists(context.Background(), client, writer, github.CollectOptions{Size: 10})
	if err == nil {
		t.Fatal("expected error from auth failure, got nil")
	}
	if !errors.Is(err, relayerrors.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken in chain", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got %q", buf.String())
	}
}
