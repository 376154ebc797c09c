// Package furi implements the bracketed furigana notation.
//
// An annotation is a concatenation of plain kana runs and bracketed kanji
// groups:
//
//	[行|い]く
//	[音楽|おん|がく]
//	まき[散|ち]らす
//
// A kanji group holds a literal followed by one or more pipe-separated
// readings. When the number of readings equals the number of characters in
// the literal, each reading belongs to one character; otherwise all readings
// together belong to the literal as a whole.
//
// # Operations
//
//   - Parse: annotation text to an ordered []Segment
//   - KanjiString: the surface spelling, readings stripped
//   - KanaString: the reading, literals replaced by their kana
//   - Encode / Encoder: []Segment back to annotation text
package furi
