package fitter

import "github.com/FocuswithJustin/furifit/core/furi"

// Unit is the smallest piece of an annotation the aligner matches against
// a word. It is either KanaUnit or KanjiUnit.
type Unit interface {
	isUnit()
}

// KanaUnit is a kana run with no kanji behind it.
type KanaUnit struct {
	Text string
}

// KanjiUnit is one reading group: a literal and the kana it is read as.
// A literal may span several characters when the reading is fused.
type KanjiUnit struct {
	Literal string
	Reading string
}

func (KanaUnit) isUnit()  {}
func (KanjiUnit) isUnit() {}

// Decompose flattens parsed segments into units, one per reading group.
func Decompose(segments []furi.Segment) []Unit {
	readings := furi.Readings(segments)
	units := make([]Unit, 0, len(readings))
	for _, r := range readings {
		if r.Kanji == "" {
			units = append(units, KanaUnit{Text: r.Kana})
			continue
		}
		units = append(units, KanjiUnit{Literal: r.Kanji, Reading: r.Kana})
	}
	return units
}
