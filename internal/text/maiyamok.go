package text

import "strings"

// maiYamok is the Thai repetition mark ๆ (U+0E46): the preceding word or
// syllable is read twice.
const maiYamok = 'ๆ'

// isThaiRune reports whether r falls in the Thai character range ก..๙
// (consonants, vowels, tone marks and Thai digits).
func isThaiRune(r rune) bool {
	return r >= 'ก' && r <= '๙'
}

// ExpandMaiYamok expands every repetition mark in text by duplicating the
// trailing run of Thai characters accumulated in the output so far. The run
// is re-derived from the output at each mark, so a second consecutive mark
// duplicates the already-doubled run. Spaces, Latin letters, punctuation and
// Arabic digits terminate a run; a mark with no preceding Thai run is
// dropped.
func ExpandMaiYamok(text string) string {
	if !strings.ContainsRune(text, maiYamok) {
		return text
	}

	out := make([]rune, 0, len(text))
	for _, r := range text {
		if r != maiYamok {
			out = append(out, r)
			continue
		}

		start := len(out)
		for start > 0 && isThaiRune(out[start-1]) {
			start--
		}
		// Empty run: the mark is consumed with nothing to duplicate.
		out = append(out, out[start:len(out)]...)
	}

	return string(out)
}
