// Package store loads the input post collection.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidypost/tidypost/internal/post"
)

// Load reads an ordered JSON array of posts from path. A missing or
// unparsable file is an error; the caller treats it as a fatal
// precondition.
func Load(path string) ([]post.Post, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- CLI tool reads a user-specified input file
	if err != nil {
		return nil, fmt.Errorf("reading collection: %w", err)
	}

	var posts []post.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing collection %s: %w", path, err)
	}
	return posts, nil
}
