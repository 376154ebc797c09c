package fitter

import (
	"strings"

	"github.com/FocuswithJustin/furifit/core/furi"
)

// run accumulates consecutive units of one kind.
type run struct {
	open     bool
	kanji    bool
	text     strings.Builder
	readings []string
}

func (r *run) flush(out []furi.Segment) []furi.Segment {
	if !r.open {
		return out
	}
	if r.kanji {
		out = append(out, furi.Kanji{Literal: r.text.String(), Readings: r.readings})
	} else {
		out = append(out, furi.Kana{Text: r.text.String()})
	}
	r.open, r.kanji = false, false
	r.text.Reset()
	r.readings = nil
	return out
}

// Rebuild merges aligned units back into the fewest segments: adjacent kana
// join into one run, adjacent kanji join into one literal carrying each
// unit's reading in order.
func Rebuild(units []Unit) []furi.Segment {
	var (
		out []furi.Segment
		cur run
	)
	for _, unit := range units {
		switch u := unit.(type) {
		case KanaUnit:
			if cur.open && cur.kanji {
				out = cur.flush(out)
			}
			cur.open = true
			cur.text.WriteString(u.Text)
		case KanjiUnit:
			if cur.open && !cur.kanji {
				out = cur.flush(out)
			}
			cur.open = true
			cur.kanji = true
			cur.text.WriteString(u.Literal)
			cur.readings = append(cur.readings, u.Reading)
		}
	}
	return cur.flush(out)
}
