package fitter

// Align matches units against word from left to right.
//
// Kanji units match either their literal or, when the word spells that
// part in kana, their reading; the latter comes back as a KanaUnit. Kana
// units must match exactly, except the last one, which takes whatever is
// left of the word since conjugation only changes the trailing kana.
func Align(units []Unit, word string) ([]Unit, error) {
	remaining := []rune(word)
	out := make([]Unit, 0, len(units))

	for i, unit := range units {
		if len(remaining) == 0 {
			return nil, WordTooShort
		}

		switch u := unit.(type) {
		case KanjiUnit:
			if n, ok := consume(remaining, u.Literal); ok {
				remaining = remaining[n:]
				out = append(out, u)
				continue
			}
			if n, ok := consume(remaining, u.Reading); ok {
				remaining = remaining[n:]
				out = append(out, KanaUnit{Text: u.Reading})
				continue
			}
			return nil, FuriganaDiffers

		case KanaUnit:
			if i == len(units)-1 {
				out = append(out, KanaUnit{Text: string(remaining)})
				remaining = nil
				continue
			}
			n, ok := consume(remaining, u.Text)
			if !ok {
				return nil, FuriganaDiffers
			}
			remaining = remaining[n:]
			out = append(out, u)
		}
	}

	if len(remaining) > 0 {
		return nil, WordTooLong
	}
	return out, nil
}

// consume reports whether s starts with prefix and how many runes it spans.
func consume(s []rune, prefix string) (int, bool) {
	n := 0
	for _, r := range prefix {
		if n >= len(s) || s[n] != r {
			return 0, false
		}
		n++
	}
	return n, true
}
