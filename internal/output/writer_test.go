package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tidypost/tidypost/internal/post"
)

var samplePosts = []post.Post{
	{Key: "a", Title: "First", Body: "<p>one</p>", AICleaned: true},
	{Title: "Second", Body: "<p>two</p>", Source: "feed"},
}

func TestNewWriter_UnknownFormat(t *testing.T) {
	if _, err := NewWriter(&bytes.Buffer{}, Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestJSONWriter_RoundTripsOrderedCollection(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteAll(samplePosts); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	var got []post.Post
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != len(samplePosts) {
		t.Fatalf("length changed: got %d, want %d", len(got), len(samplePosts))
	}
	for i := range got {
		if got[i] != samplePosts[i] {
			t.Errorf("posts[%d] = %+v, want %+v", i, got[i], samplePosts[i])
		}
	}
}

func TestJSONLWriter_OneLinePerPost(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatJSONL)
	if err := w.WriteAll(samplePosts); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var first post.Post
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if first.Key != "a" {
		t.Errorf("line 0 = %+v", first)
	}
}

func TestYAMLWriter_ProducesSequence(t *testing.T) {
	buf := &bytes.Buffer{}
	w, _ := NewWriter(buf, FormatYAML)
	if err := w.WriteAll(samplePosts); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "title: First") {
		t.Errorf("missing first post in YAML output:\n%s", out)
	}
	if !strings.Contains(out, "source: feed") {
		t.Errorf("missing source field in YAML output:\n%s", out)
	}
}
