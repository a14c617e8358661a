package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirseerhq/gist-relay/internal/github"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	if writer == nil {
		t.Fatal("NewWriter returned nil")
	}
	if writer.Count() != 0 {
		t.Errorf("Initial count should be 0, got %d", writer.Count())
	}
}

func TestWriter_Write(t *testing.T) {
	tests := []struct {
		name  string
		gists []github.Gist
	}{
		{
			name: "single gist",
			gists: []github.Gist{
				{ID: "G_1", Description: "one", Name: "one.md", PushedAt: "2018-03-01T00:00:00Z"},
			},
		},
		{
			name: "multiple gists",
			gists: []github.Gist{
				{ID: "G_1", Description: "one", Name: "one.md", PushedAt: "2018-03-01T00:00:00Z"},
				{ID: "G_2", Description: "", Name: "two.md", PushedAt: "2018-02-01T00:00:00Z"},
				{ID: "G_3", Description: "three", Name: "three.md", PushedAt: "2018-01-01T00:00:00Z"},
			},
		},
		{
			name:  "no gists",
			gists: []github.Gist{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf)

			for _, gist := range tt.gists {
				if err := writer.Write(gist); err != nil {
					t.Fatalf("Write failed: %v", err)
				}
			}

			if writer.Count() != len(tt.gists) {
				t.Errorf("Count mismatch: got %d, want %d", writer.Count(), len(tt.gists))
			}

			output := strings.TrimSpace(buf.String())
			if output == "" {
				if len(tt.gists) != 0 {
					t.Fatal("no output for non-empty gists")
				}
				return
			}

			lines := strings.Split(output, "\n")
			if len(lines) != len(tt.gists) {
				t.Fatalf("Line count mismatch: got %d, want %d", len(lines), len(tt.gists))
			}

			for i, line := range lines {
				var decoded github.Gist
				if err := json.Unmarshal([]byte(line), &decoded); err != nil {
					t.Fatalf("Failed to parse JSON at line %d: %v", i, err)
				}
				if decoded != tt.gists[i] {
					t.Errorf("Line %d mismatch:\ngot:  %+v\nwant: %+v", i, decoded, tt.gists[i])
				}
			}
		})
	}
}

func TestWriter_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf)

	numGoroutines := 10
	gistsPerGoroutine := 100
	totalGists := numGoroutines * gistsPerGoroutine

	errCh := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			for j := 0; j < gistsPerGoroutine; j++ {
				gist := github.Gist{
					ID:       "G_concurrent",
					Name:     "concurrent.md",
					PushedAt: "2018-01-01T00:00:00Z",
				}
				if err := writer.Write(gist); err != nil {
					errCh <- err
					return
				}
			}
			errCh <- nil
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("Concurrent write failed: %v", err)
		}
	}

	if writer.Count() != totalGists {
		t.Errorf("Count mismatch: got %d, want %d", writer.Count(), totalGists)
	}

	// Every line must still be valid standalone JSON.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != totalGists {
		t.Errorf("Line count mismatch: got %d, want %d", len(lines), totalGists)
	}
	for i, line := range lines {
		var gist github.Gist
		if err := json.Unmarshal([]byte(line), &gist); err != nil {
			t.Errorf("Invalid JSON at line %d: %v", i, err)
		}
	}
}

func TestNewFileWriter(t *testing.T) {
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "gists.ndjson")

	writer, err := NewFileWriter(filename)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	gists := []github.Gist{
		{ID: "G_1", Description: "one", Name: "one.md", PushedAt: "2018-03-01T00:00:00Z"},
		{ID: "G_2", Description: "two", Name: "two.md", PushedAt: "2018-02-01T00:00:00Z"},
	}

	for _, gist := range gists {
		if err := writer.Write(gist); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != len(gists) {
		t.Fatalf("Line count mismatch: got %d, want %d", len(lines), len(gists))
	}

	for i, line := range lines {
		var gist github.Gist
		if err := json.Unmarshal([]byte(line), &gist); err != nil {
			t.Fatalf("Failed to parse JSON at line %d: %v", i, err)
		}
		if gist != gists[i] {
			t.Errorf("Line %d mismatch: got %+v, want %+v", i, gist, gists[i])
		}
	}
}

func TestNewFileWriter_BadPath(t *testing.T) {
	if _, err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "out.ndjson")); err == nil {
		t.Error("expected error creating file in missing directory")
	}
}
