package furi

import "strings"

// Segment is one element of a parsed annotation. It is either Kana or Kanji.
type Segment interface {
	isSegment()
}

// Kana is a run of text with no reading attached.
type Kana struct {
	Text string
}

// Kanji is a literal with its ordered readings.
type Kanji struct {
	Literal  string
	Readings []string
}

func (Kana) isSegment()  {}
func (Kanji) isSegment() {}

// Reading pairs a piece of kanji with the kana it is read as.
// Kanji is empty for plain kana.
type Reading struct {
	Kanji string
	Kana  string
}

// ReadingGroups splits the literal into the groups its readings belong to.
func (k Kanji) ReadingGroups() []Reading {
	chars := []rune(k.Literal)
	if len(k.Readings) > 1 && len(k.Readings) == len(chars) {
		groups := make([]Reading, len(chars))
		for i, c := range chars {
			groups[i] = Reading{Kanji: string(c), Kana: k.Readings[i]}
		}
		return groups
	}
	return []Reading{{Kanji: k.Literal, Kana: strings.Join(k.Readings, "")}}
}

// Readings flattens segments into reading groups, preserving order.
func Readings(segments []Segment) []Reading {
	var out []Reading
	for _, seg := range segments {
		switch s := seg.(type) {
		case Kana:
			out = append(out, Reading{Kana: s.Text})
		case Kanji:
			out = append(out, s.ReadingGroups()...)
		}
	}
	return out
}

// KanjiString returns the surface spelling of the segments.
func KanjiString(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case Kana:
			sb.WriteString(s.Text)
		case Kanji:
			sb.WriteString(s.Literal)
		}
	}
	return sb.String()
}

// KanaString returns the segments as they are read.
func KanaString(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case Kana:
			sb.WriteString(s.Text)
		case Kanji:
			for _, r := range s.Readings {
				sb.WriteString(r)
			}
		}
	}
	return sb.String()
}
