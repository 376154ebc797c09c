// Package fitter re-attaches the furigana of a dictionary form onto an
// inflected spelling of the same word.
//
//	fitter.Fit("行った", "[行|い]く")           // "[行|い]った"
//	fitter.Fit("引っかかる", "[引|ひ]っ[掛|か]かる") // "[引|ひ]っかかる"
//	fitter.Fit("来た", "[来|く]る")             // "[来|き]た"
//
// The dictionary annotation is split into reading units, the units are
// aligned against the word, and the aligned units are merged back into
// annotation segments. 来る and 為る are irregular and handled by a fixed table.
//
// The package keeps no state; every call is independent.
package fitter

import (
	"github.com/FocuswithJustin/furifit/core/errors"
	"github.com/FocuswithJustin/furifit/core/furi"
)

// Fit annotates word using the furigana of its dictionary form.
//
// A word that cannot carry the annotation yields a FittingError. An
// annotation that cannot be parsed yields a wrapped *errors.ParseError.
func Fit(word, furigana string) (string, error) {
	segments, err := FitSegments(word, furigana)
	if err != nil {
		return "", err
	}
	return furi.Encode(segments), nil
}

// FitSegments is Fit without the final encoding step.
func FitSegments(word, furigana string) ([]furi.Segment, error) {
	segments, err := furi.Parse(furigana)
	if err != nil {
		return nil, errors.Wrap(err, "dictionary furigana")
	}

	root := furi.KanjiString(segments)
	if verb, ok := lookupIrregular(root); ok {
		return verb.fit(root, word), nil
	}

	aligned, err := Align(Decompose(segments), word)
	if err != nil {
		return nil, err
	}
	return Rebuild(aligned), nil
}
