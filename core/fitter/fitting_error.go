package fitter

import "github.com/FocuswithJustin/furifit/core/errors"

// FittingError classifies why a word cannot carry an annotation.
type FittingError int

const (
	// FuriganaDiffers means part of the word does not match the annotation.
	FuriganaDiffers FittingError = iota + 1
	// WordTooLong means text is left over after every unit matched.
	WordTooLong
	// WordTooShort means the word ran out before every unit matched.
	WordTooShort
)

func (e FittingError) Error() string {
	switch e {
	case FuriganaDiffers:
		return "the furigana differs from the provided word"
	case WordTooLong:
		return "the word is too long to fit the furigana"
	case WordTooShort:
		return "the word is too short to fit the furigana"
	default:
		return "unknown fitting error"
	}
}

func (e FittingError) Unwrap() error {
	return errors.ErrMismatch
}
