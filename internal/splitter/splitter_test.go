package splitter

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain lines",
			input: "a\nb\nc",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "blank and padded lines dropped",
			input: "a\n\nb\n c \n",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "windows line endings",
			input: "first\r\nsecond\r\n",
			want:  []string{"first", "second"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   \n\t\n  \n",
			want:  nil,
		},
		{
			name:  "single line no newline",
			input: "only one",
			want:  []string{"only one"},
		},
		{
			name:  "inner whitespace preserved",
			input: "  keep   inner   spacing  ",
			want:  []string{"keep   inner   spacing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Split returned %d lines, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitNoEmptyEntries(t *testing.T) {
	inputs := []string{"a\n\n\nb", "\n\n", "x\n \ny", "\ttabbed\t\n"}
	for _, input := range inputs {
		for i, line := range Split(input) {
			if line == "" {
				t.Errorf("Split(%q) produced empty entry at %d", input, i)
			}
		}
	}
}
