package normalize

import (
	"strings"
	"testing"
)

func TestFixQuotes_MismatchedPairs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "double open single close",
			input: `He said "hello' to me`,
			want:  `He said "hello" to me`,
		},
		{
			name:  "single open double close",
			input: `He said 'hello" to me`,
			want:  `He said "hello" to me`,
		},
		{
			name:  "mismatched close before punctuation",
			input: `She called it "odd'.`,
			want:  `She called it "odd".`,
		},
		{
			name:  "contraction apostrophe untouched",
			input: `He said "don't worry" to me`,
			want:  `He said "don't worry" to me`,
		},
		{
			name:  "apostrophe before a real pair untouched",
			input: `It's "fine" now`,
			want:  `It's "fine" now`,
		},
		{
			name:  "adjacent pairs separated by one space",
			input: `"a' "b'`,
			want:  `"a" "b"`,
		},
		{
			name:  "adjacent pairs mid-sentence",
			input: `He said "hi' "bye' today`,
			want:  `He said "hi" "bye" today`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixQuotes(tt.input); got != tt.want {
				t.Errorf("FixQuotes(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFixQuotes_SpanBound(t *testing.T) {
	// Two unrelated marks far apart must not be coerced into a pair.
	input := `start "` + strings.Repeat("a", 200) + `' end`
	if got := FixQuotes(input); got != input {
		t.Errorf("marks %d chars apart were coerced: %q", 200, got)
	}
}

func TestFixQuotes_UnescapesQuotes(t *testing.T) {
	input := `He said \"hello\" and left`
	want := `He said "hello" and left`
	if got := FixQuotes(input); got != want {
		t.Errorf("FixQuotes(%q) = %q, want %q", input, got, want)
	}
}

func TestFixQuotes_TrimsWhitespaceInsidePair(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`He said " hello " to me`, `He said "hello" to me`},
		{`" padded start" end`, `"padded start" end`},
		{`ends with "padded "`, `ends with "padded"`},
	}

	for _, tt := range tests {
		if got := FixQuotes(tt.input); got != tt.want {
			t.Errorf("FixQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFixQuotes_InsertsMissingSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`He said"hello" to me`, `He said "hello" to me`},
		{`"hello"he said`, `"hello" he said`},
	}

	for _, tt := range tests {
		if got := FixQuotes(tt.input); got != tt.want {
			t.Errorf("FixQuotes(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFixQuotes_LeavesWellFormedTextAlone(t *testing.T) {
	tests := []string{
		``,
		`no quotes at all`,
		`He said "a" and "b"`,
		`"Start quote" then 'inner' prose`,
	}

	for _, input := range tests {
		if got := FixQuotes(input); got != input {
			t.Errorf("FixQuotes(%q) = %q, want input unchanged", input, got)
		}
	}
}

func TestFixQuotes_Idempotent(t *testing.T) {
	inputs := []string{
		`He said "hello' to me`,
		`He said \"hello\" to me`,
		`He said " hello " to me`,
		`He said"hello" to me`,
		`mixed \"case' with " padding " and"no space"`,
		`"a' "b'`,
		`He said "hi' "bye' today`,
		`said"one"and"two" here`,
		`plain text`,
		``,
	}

	for _, input := range inputs {
		once := FixQuotes(input)
		twice := FixQuotes(once)
		if once != twice {
			t.Errorf("FixQuotes not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
