package fitter

import (
	"testing"

	"github.com/FocuswithJustin/furifit/core/furi"
)

func TestLookupIrregular(t *testing.T) {
	for _, root := range []string{"来る", "為る"} {
		if _, ok := lookupIrregular(root); !ok {
			t.Errorf("lookupIrregular(%q) = false, want true", root)
		}
	}
	for _, root := range []string{"行く", "来", "する", "くる", ""} {
		if _, ok := lookupIrregular(root); ok {
			t.Errorf("lookupIrregular(%q) = true, want false", root)
		}
	}
}

func TestIrregularAcceptsAnyWord(t *testing.T) {
	tests := []struct {
		root string
		word string
		want string
	}{
		{root: "来る", word: "", want: "[来|こ]"},
		{root: "来る", word: "来", want: "[来|こ]"},
		{root: "来る", word: "くる", want: "[来|こ]る"},
		{root: "為る", word: "したい", want: "[為|さ]たい"},
		{root: "為る", word: "為させる", want: "[為|さ]させる"},
	}

	for _, tt := range tests {
		t.Run(tt.root+"/"+tt.word, func(t *testing.T) {
			verb, ok := lookupIrregular(tt.root)
			if !ok {
				t.Fatalf("lookupIrregular(%q) = false", tt.root)
			}
			if got := furi.Encode(verb.fit(tt.root, tt.word)); got != tt.want {
				t.Errorf("fit(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestDropFirstRune(t *testing.T) {
	tests := map[string]string{
		"":     "",
		"来":    "",
		"来た":   "た",
		"𠮷野家": "野家",
		"ab":   "b",
	}
	for in, want := range tests {
		if got := dropFirstRune(in); got != want {
			t.Errorf("dropFirstRune(%q) = %q, want %q", in, got, want)
		}
	}
}
