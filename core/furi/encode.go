package furi

import "strings"

// Encoder writes segments as annotation text.
type Encoder struct {
	sb strings.Builder
}

// WriteKana appends a plain run.
func (e *Encoder) WriteKana(text string) {
	e.sb.WriteString(text)
}

// WriteKanji appends a bracketed group. A literal with no readings is
// written bare.
func (e *Encoder) WriteKanji(literal string, readings []string) {
	if literal == "" {
		return
	}
	if len(readings) == 0 {
		e.sb.WriteString(literal)
		return
	}
	e.sb.WriteByte('[')
	e.sb.WriteString(literal)
	for _, r := range readings {
		e.sb.WriteByte('|')
		e.sb.WriteString(r)
	}
	e.sb.WriteByte(']')
}

// WriteSegment appends any segment.
func (e *Encoder) WriteSegment(seg Segment) {
	switch s := seg.(type) {
	case Kana:
		e.WriteKana(s.Text)
	case Kanji:
		e.WriteKanji(s.Literal, s.Readings)
	}
}

// String returns everything written so far.
func (e *Encoder) String() string {
	return e.sb.String()
}

// Encode serializes segments to annotation text.
func Encode(segments []Segment) string {
	var e Encoder
	for _, seg := range segments {
		e.WriteSegment(seg)
	}
	return e.String()
}
