package answers

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"lowercases", "HELLO World", "hello world"},
		{"strips punctuation", "Hello, world!!!", "hello world"},
		{"collapses whitespace", "  hello    world  ", "hello world"},
		{"keeps contraction", "I'm fine.", "i'm fine"},
		{"keeps mid-word apostrophe", "Don't!! worry.", "don't worry"},
		{"curly apostrophe folds to straight", "don’t worry", "don't worry"},
		{"drops leading apostrophe", "'hello'", "hello"},
		{"drops lone apostrophe", "a ' b", "a b"},
		{"keeps digits", "room 101", "room 101"},
		{"underscore is not a word char", "snake_case", "snake case"},
		{"unicode letters", "Überraschung", "überraschung"},
		{"mixed symbols", "go (to) [the] store?", "go to the store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeApostropheDistinguishesContractions(t *testing.T) {
	// "don't" and "dont" must stay distinct after normalization.
	if Normalize("Don't!! worry.") == Normalize("dont worry") {
		t.Error("contraction collapsed: normalized \"don't\" matches \"dont\"")
	}
}

func TestNormalizeApostropheFormsCompareEqual(t *testing.T) {
	// Chat keyboards emit U+2019; the expected answer usually carries the
	// straight form. Both spellings must normalize identically, in either
	// direction.
	if got, want := Normalize("don’t worry"), Normalize("don't worry"); got != want {
		t.Errorf("curly vs straight apostrophe: %q != %q", got, want)
	}
	if got, want := Normalize("I’m fine."), "i'm fine"; got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "I’m fine.", got, want)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := "  What's   YOUR name?! "
	first := Normalize(input)
	for range 5 {
		if got := Normalize(input); got != first {
			t.Fatalf("Normalize not deterministic: %q then %q", first, got)
		}
	}
}
