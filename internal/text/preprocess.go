// Package text normalizes raw Thai text before it is handed to a synthesis
// engine: the repetition mark ๆ is expanded and embedded numerals are
// converted to their spoken Thai form.
package text

import (
	"regexp"
	"strings"
)

// numberPattern matches a maximal numeric token: optional leading minus,
// integer digits, optional decimal fraction. Go's \d is ASCII-only, so the
// class spells out the Thai digits ๐–๙ alongside 0–9.
var numberPattern = regexp.MustCompile(`-?[0-9๐-๙]+(?:\.[0-9๐-๙]+)?`)

const anyDigit = "0123456789๐๑๒๓๔๕๖๗๘๙"

// Options selects which preprocessing stages run.
type Options struct {
	ExpandNumbers  bool
	ExpandMaiYamok bool
}

// DefaultOptions enables every stage.
func DefaultOptions() Options {
	return Options{ExpandNumbers: true, ExpandMaiYamok: true}
}

// Preprocess normalizes text for synthesis. Repetition marks are expanded
// first, then numeric tokens are replaced with their Thai word form;
// everything else is copied through verbatim. The order is fixed: converted
// number words contain no digits and no Thai-run continuity with adjacent
// text, so running the expander afterwards would let a mark following a
// number capture the converted words instead of the original token.
//
// Preprocess is a pure function over any input and never fails; already
// normalized text passes through unchanged.
func Preprocess(text string, opts Options) string {
	if opts.ExpandMaiYamok {
		text = ExpandMaiYamok(text)
	}

	if opts.ExpandNumbers && strings.ContainsAny(text, anyDigit) {
		text = numberPattern.ReplaceAllStringFunc(text, ConvertNumberToken)
	}

	return text
}
