package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirseerhq/gist-relay/internal/github"
)

// Writer streams gists as NDJSON to a file or io.Writer, one gist per line.
// Gists are encoded as they arrive so a large collection never needs to sit
// in memory as a single document, and the field names on the wire are the
// upstream API's (id, description, name, pushedAt).
type Writer struct {
	mu        sync.Mutex
	output    io.Writer
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates an NDJSON gist writer over the given output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		output:  w,
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates an NDJSON gist writer backed by a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		output:    file,
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes a single gist as one NDJSON line.
func (w *Writer) Write(gist github.Gist) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(gist); err != nil {
		return fmt.Errorf("failed to write gist %s: %w", gist.ID, err)
	}

	w.count++
	return nil
}

// Count returns the number of gists written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
