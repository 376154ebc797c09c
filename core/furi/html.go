package furi

import (
	"strings"

	"github.com/FocuswithJustin/furifit/core/encoding"
)

// RubyHTML renders segments as HTML ruby markup. Each reading group gets
// its own <rt>, so per-character readings sit over their characters.
//
//	[音楽|おん|がく]く -> <ruby>音<rt>おん</rt>楽<rt>がく</rt></ruby>く
func RubyHTML(segments []Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		switch s := seg.(type) {
		case Kana:
			sb.WriteString(encoding.EscapeHTML(s.Text))
		case Kanji:
			if len(s.Readings) == 0 {
				sb.WriteString(encoding.EscapeHTML(s.Literal))
				continue
			}
			sb.WriteString("<ruby>")
			for _, g := range s.ReadingGroups() {
				sb.WriteString(encoding.EscapeHTML(g.Kanji))
				sb.WriteString("<rt>")
				sb.WriteString(encoding.EscapeHTML(g.Kana))
				sb.WriteString("</rt>")
			}
			sb.WriteString("</ruby>")
		}
	}
	return sb.String()
}
