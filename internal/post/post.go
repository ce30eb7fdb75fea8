// Package post defines the blog post record moved through the cleaning
// pipeline.
package post

import "strconv"

// Post is one unit of text content to be cleaned. The body may hold
// stored HTML or plain text.
type Post struct {
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	AICleaned bool   `json:"ai_cleaned,omitempty" yaml:"ai_cleaned,omitempty"`
}

// Update holds the fields a successful cleaning pass produces for one
// post. Once written to the progress checkpoint it is never modified.
type Update struct {
	Title     string `json:"title" yaml:"title"`
	Body      string `json:"body" yaml:"body"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	AICleaned bool   `json:"ai_cleaned" yaml:"ai_cleaned"`
}

// ID returns the stable identity used for checkpointing. Posts without
// an explicit key fall back to their position in the collection.
func (p Post) ID(index int) string {
	if p.Key != "" {
		return p.Key
	}
	return strconv.Itoa(index)
}

// Apply merges a completed update onto the original record.
func (p *Post) Apply(u Update) {
	p.Title = u.Title
	p.Body = u.Body
	if u.Source != "" {
		p.Source = u.Source
	}
	p.AICleaned = u.AICleaned
}
