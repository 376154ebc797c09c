package fitter

import (
	"strings"

	"github.com/FocuswithJustin/furifit/core/furi"
)

// prefixRule picks a stem reading when the word starts with prefix.
type prefixRule struct {
	prefix  string
	reading string
}

// irregularVerb describes a verb whose stem reading changes with conjugation.
// The first rune of the word is the stem; the rest is written out as kana.
type irregularVerb struct {
	stem     string
	base     string       // reading when the word is the dictionary form itself
	rules    []prefixRule // first match wins
	fallback string
}

// irregularVerbs is keyed by the kanji-only spelling of the dictionary form.
var irregularVerbs = map[string]irregularVerb{
	"来る": {
		stem: "来",
		base: "く",
		rules: []prefixRule{
			{prefix: "来ま", reading: "き"},
			{prefix: "来て", reading: "き"},
			{prefix: "来た", reading: "き"},
		},
		fallback: "こ",
	},
	"為る": {
		stem: "為",
		base: "す",
		rules: []prefixRule{
			{prefix: "為ま", reading: "し"},
			{prefix: "為て", reading: "し"},
			{prefix: "為た", reading: "し"},
			{prefix: "為ろ", reading: "し"},
		},
		fallback: "さ",
	},
}

// lookupIrregular returns the verb for a dictionary form, if it is irregular.
func lookupIrregular(root string) (irregularVerb, bool) {
	v, ok := irregularVerbs[root]
	return v, ok
}

// reading returns the stem reading to use for word.
func (v irregularVerb) reading(root, word string) string {
	if word == root {
		return v.base
	}
	for _, r := range v.rules {
		if strings.HasPrefix(word, r.prefix) {
			return r.reading
		}
	}
	return v.fallback
}

// fit annotates word without checking that it is a form of the verb.
func (v irregularVerb) fit(root, word string) []furi.Segment {
	segments := []furi.Segment{furi.Kanji{Literal: v.stem, Readings: []string{v.reading(root, word)}}}
	if tail := dropFirstRune(word); tail != "" {
		segments = append(segments, furi.Kana{Text: tail})
	}
	return segments
}

func dropFirstRune(s string) string {
	for i := range s {
		if i > 0 {
			return s[i:]
		}
	}
	return ""
}
