package text

import "strings"

// ChunkText splits text into chunks of at most maxChars bytes for sequential
// synthesis, grouping consecutive segments together while staying within the
// limit. Segments are sentences when the text carries ., ! or ? terminators;
// Thai prose usually has none, so text without terminators is segmented at
// whitespace boundaries instead. If maxChars is 0, no splitting is performed.
// A single segment exceeding maxChars is kept intact as its own chunk.
func ChunkText(text string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{text}
	}

	segments := splitSentences(text)
	if len(segments) <= 1 && len(text) > maxChars {
		segments = strings.Fields(text)
	}
	if len(segments) <= 1 {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, s := range segments {
		if current.Len() == 0 {
			current.WriteString(s)
			continue
		}
		// Would appending this segment (with a space separator) exceed the limit?
		if current.Len()+1+len(s) > maxChars {
			chunks = append(chunks, current.String())
			current.Reset()
			current.WriteString(s)
		} else {
			current.WriteByte(' ')
			current.WriteString(s)
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// splitSentences splits text on sentence-ending punctuation (., !, ?),
// keeping the terminator attached to its sentence.
// Empty segments are dropped.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			s := strings.TrimSpace(text[start : i+1])
			if s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}

	// Trailing text after the last terminator (if any).
	if start < len(text) {
		s := strings.TrimSpace(text[start:])
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
