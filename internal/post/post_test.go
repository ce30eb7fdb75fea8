package post

import "testing"

func TestID_UsesKeyWhenPresent(t *testing.T) {
	p := Post{Key: "my-post", Title: "t"}
	if got := p.ID(7); got != "my-post" {
		t.Errorf("ID() = %q, want %q", got, "my-post")
	}
}

func TestID_FallsBackToIndex(t *testing.T) {
	p := Post{Title: "t"}
	if got := p.ID(7); got != "7" {
		t.Errorf("ID() = %q, want %q", got, "7")
	}
}

func TestApply_MergesUpdate(t *testing.T) {
	p := Post{Key: "k", Title: "old title", Body: "old body", Source: "feed"}
	p.Apply(Update{Title: "new title", Body: "<p>new body</p>", AICleaned: true})

	if p.Title != "new title" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Body != "<p>new body</p>" {
		t.Errorf("Body = %q", p.Body)
	}
	if !p.AICleaned {
		t.Error("AICleaned should be set")
	}
	if p.Source != "feed" {
		t.Errorf("empty update source should not clear original, got %q", p.Source)
	}
	if p.Key != "k" {
		t.Errorf("Key should be untouched, got %q", p.Key)
	}
}

func TestApply_FallbackLeavesAICleanedUnset(t *testing.T) {
	p := Post{Title: "t", Body: "b"}
	p.Apply(Update{Title: "t2", Body: "b2"})
	if p.AICleaned {
		t.Error("AICleaned should stay unset for a fallback update")
	}
}
