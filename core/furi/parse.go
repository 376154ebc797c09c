package furi

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/furifit/core/errors"
)

// furiganaGrammar is the participle grammar for bracketed annotations.
// Examples: "[行|い]く", "[音楽|おん|がく]", "まき[散|ち]らす"
//
//nolint:govet // participle grammar tags are not standard struct tags
type furiganaGrammar struct {
	Segments []*segmentGrammar `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type segmentGrammar struct {
	Kanji *kanjiGrammar `  @@`
	Kana  *string       `| @Text`
}

//nolint:govet // participle grammar tags are not standard struct tags
type kanjiGrammar struct {
	Literal  string   `"[" @Text`
	Readings []string `( "|" @Text )+ "]"`
}

// furiLexer splits annotations into brackets, pipes and everything else.
var furiLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\[`},
	{Name: "Close", Pattern: `\]`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Text", Pattern: `[^\[\]|]+`},
})

var furiParser = participle.MustBuild[furiganaGrammar](
	participle.Lexer(furiLexer),
)

// Parse parses annotation text into segments.
// Empty input yields no segments.
func Parse(raw string) ([]Segment, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := furiParser.ParseString("", raw)
	if err != nil {
		pe := errors.NewParse("furigana", raw, err.Error())
		var perr participle.Error
		if errors.As(err, &perr) {
			pe.Offset = perr.Position().Offset
			pe.Message = perr.Message()
		}
		pe.Err = err
		return nil, pe
	}

	segments := make([]Segment, 0, len(parsed.Segments))
	for _, s := range parsed.Segments {
		if s.Kanji != nil {
			segments = append(segments, Kanji{
				Literal:  s.Kanji.Literal,
				Readings: s.Kanji.Readings,
			})
			continue
		}
		if s.Kana != nil {
			segments = append(segments, Kana{Text: *s.Kana})
		}
	}
	return segments, nil
}
