package text

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// invisibles strips characters that survive copy-paste from Thai documents
// but carry no spoken content: zero-width space (used as an invisible word
// separator), zero-width non-joiner, and the BOM.
var invisibles = strings.NewReplacer("\u200B", "", "\u200C", "", "\uFEFF", "")

// Normalize prepares raw input text for synthesis.
// It normalizes line endings to \n, removes zero-width characters, trims
// surrounding whitespace, and rejects empty or whitespace-only input.
func Normalize(s string) (string, error) {
	// Normalize line endings: CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = invisibles.Replace(s)
	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}

	return s, nil
}
