package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	stops := NewStopwordSet([]string{"the", "a"})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"with punctuation", "hello, world!", []string{"hello", "world"}},
		{"uppercase normalized", "DELICIOUS Food", []string{"delicious", "food"}},
		{"digits rejected", "co2 levels", []string{"levels"}},
		{"mixed alphanumeric rejected", "item123 test", []string{"test"}},
		{"single hyphen accepted", "well-cooked steak", []string{"well-cooked", "steak"}},
		{"multiple hyphens rejected", "state-of-the-art kitchen", []string{"kitchen"}},
		{"apostrophe rejected", "it's tasty", []string{"tasty"}},
		{"quoted word accepted", "'amazing' pasta", []string{"amazing", "pasta"}},
		{"stop words removed", "the food is a delight", []string{"food", "is", "delight"}},
		{"non-ascii stripped", "crème brûlée", []string{"crme", "brle"}},
		{"fully non-ascii", "日本語のレビュー", []string{}},
		{"only symbols", "!@#$%^", []string{}},
		{"order preserved", "zebra apple mango", []string{"zebra", "apple", "mango"}},
		{"newlines as boundaries", "good\nfood", []string{"good", "food"}},
		{"bare hyphens dropped", "-- -", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, stops)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeNilStopwords(t *testing.T) {
	got := Tokenize("the food is good", nil)
	want := []string{"the", "food", "is", "good"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize with nil stops = %v, want %v", got, want)
	}
}

func TestTokenizeDeterminism(t *testing.T) {
	stops := DefaultStopwords()
	input := "The well-cooked lamb was delicious, truly delicious — 10/10!"

	first := Tokenize(input, stops)
	for i := 0; i < 5; i++ {
		again := Tokenize(input, stops)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced %v, first run produced %v", i, again, first)
		}
	}
}

func TestDefaultStopwords(t *testing.T) {
	stops := DefaultStopwords()

	for _, w := range []string{"the", "a", "and", "is", "was"} {
		if !stops.Contains(w) {
			t.Errorf("default stop-word list should contain %q", w)
		}
	}
	if stops.Contains("delicious") {
		t.Error("default stop-word list should not contain 'delicious'")
	}
}

func TestNewStopwordSetNormalizes(t *testing.T) {
	set := NewStopwordSet([]string{" The ", "A", "", "and"})
	for _, w := range []string{"the", "a", "and"} {
		if !set.Contains(w) {
			t.Errorf("set should contain %q", w)
		}
	}
	if len(set) != 3 {
		t.Errorf("set size = %d, want 3", len(set))
	}
}
