package normalize

import "testing"

func TestToParagraphHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "two paragraphs",
			input: "Para one.\n\nPara two.",
			want:  "<p>Para one.</p><p>Para two.</p>",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "  \n\n \t ",
			want:  "",
		},
		{
			name:  "single paragraph",
			input: "Just one paragraph.",
			want:  "<p>Just one paragraph.</p>",
		},
		{
			name:  "internal newlines collapse to spaces",
			input: "Line one\nline two.\n\nNext para.",
			want:  "<p>Line one line two.</p><p>Next para.</p>",
		},
		{
			name:  "extra blank lines dropped",
			input: "First.\n\n\n\nSecond.",
			want:  "<p>First.</p><p>Second.</p>",
		},
		{
			name:  "blank lines with stray spaces still split",
			input: "First.\n \nSecond.",
			want:  "<p>First.</p><p>Second.</p>",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "\n\n  Padded.  \n\n",
			want:  "<p>Padded.</p>",
		},
		{
			name:  "windows line endings",
			input: "One.\r\n\r\nTwo.",
			want:  "<p>One.</p><p>Two.</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToParagraphHTML(tt.input); got != tt.want {
				t.Errorf("ToParagraphHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToParagraphHTML_PreservesParagraphOrder(t *testing.T) {
	input := "alpha\n\nbravo\n\ncharlie"
	want := "<p>alpha</p><p>bravo</p><p>charlie</p>"
	if got := ToParagraphHTML(input); got != want {
		t.Errorf("ToParagraphHTML(%q) = %q, want %q", input, got, want)
	}
}
