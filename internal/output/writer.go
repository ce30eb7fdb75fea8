// Package output serializes the final post collection.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tidypost/tidypost/internal/post"
)

// Format represents output format types.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Writer writes the cleaned collection in a fixed order.
type Writer interface {
	// WriteAll serializes the whole collection.
	WriteAll(posts []post.Post) error

	// Close flushes buffered output.
	Close() error
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format) (Writer, error) {
	switch format {
	case FormatJSON:
		return &jsonWriter{w: bufio.NewWriter(w)}, nil
	case FormatJSONL:
		return &jsonlWriter{w: bufio.NewWriter(w)}, nil
	case FormatYAML:
		return &yamlWriter{w: bufio.NewWriter(w)}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// jsonWriter writes the collection as one pretty-printed JSON array,
// mirroring the input collection's shape.
type jsonWriter struct {
	w *bufio.Writer
}

func (jw *jsonWriter) WriteAll(posts []post.Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return err
	}
	if _, err := jw.w.Write(data); err != nil {
		return err
	}
	_, err = jw.w.WriteString("\n")
	return err
}

func (jw *jsonWriter) Close() error {
	return jw.w.Flush()
}

// jsonlWriter writes one post per line.
type jsonlWriter struct {
	w *bufio.Writer
}

func (jw *jsonlWriter) WriteAll(posts []post.Post) error {
	enc := json.NewEncoder(jw.w)
	for _, p := range posts {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

func (jw *jsonlWriter) Close() error {
	return jw.w.Flush()
}

// yamlWriter writes the collection as a YAML sequence.
type yamlWriter struct {
	w *bufio.Writer
}

func (yw *yamlWriter) WriteAll(posts []post.Post) error {
	enc := yaml.NewEncoder(yw.w)
	enc.SetIndent(2)
	if err := enc.Encode(posts); err != nil {
		return err
	}
	return enc.Close()
}

func (yw *yamlWriter) Close() error {
	return yw.w.Flush()
}
