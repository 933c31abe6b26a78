package histodiff

import "bytes"

// LineTokenizer splits a string into line tokens. The newline separator
// (`\r\n` or `\n`) is included in the emitted token; the final line is
// emitted without one if the input doesn't end in a newline. Because the
// terminator is part of the token, a change of line terminator style (or a
// dropped trailing newline) between two inputs shows up as a changed line.
type LineTokenizer struct {
	rest string
}

// Lines returns a LineTokenizer over text.
func Lines(text string) *LineTokenizer {
	return &LineTokenizer{rest: text}
}

// Next reports whether another line remains, returning false once the
// input is exhausted. It does not advance; Line does.
func (t *LineTokenizer) Next() bool {
	return len(t.rest) > 0
}

// Line returns the current line, including its trailing newline (and any
// preceding carriage return) if present, and advances past it. Line must
// only be called after Next reports true.
func (t *LineTokenizer) Line() string {
	if nl := indexByte(t.rest, '\n'); nl != -1 {
		line := t.rest[:nl+1]
		t.rest = t.rest[nl+1:]
		return line
	}
	line := t.rest
	t.rest = ""
	return line
}

// EstimateTokens returns a cheap estimate of the number of lines remaining
// in the tokenizer, based on the average length of the first 20 lines. It
// does not consume the tokenizer.
func (t *LineTokenizer) EstimateTokens() uint32 {
	return estimateLineCount(t.rest, func(s string) int { return indexByte(s, '\n') })
}

// ByteLineTokenizer is the byte-slice analogue of LineTokenizer. It makes
// no encoding assumptions; like LineTokenizer, it keeps each line's
// terminator, so a change in line terminator style between two inputs
// produces a detectable difference.
type ByteLineTokenizer struct {
	rest []byte
}

// ByteLines returns a ByteLineTokenizer over data.
func ByteLines(data []byte) *ByteLineTokenizer {
	return &ByteLineTokenizer{rest: data}
}

// Next reports whether another line remains, returning false once the
// input is exhausted. It does not advance; Line does.
func (t *ByteLineTokenizer) Next() bool {
	return len(t.rest) > 0
}

// Line returns the current line (including its terminator, if any) and
// advances past it. Line must only be called after Next reports true.
func (t *ByteLineTokenizer) Line() []byte {
	if nl := bytes.IndexByte(t.rest, '\n'); nl != -1 {
		line := t.rest[:nl+1]
		t.rest = t.rest[nl+1:]
		return line
	}
	line := t.rest
	t.rest = nil
	return line
}

// EstimateTokens returns a cheap estimate of the number of lines remaining,
// based on the average length of the first 20 lines. It does not consume
// the tokenizer.
func (t *ByteLineTokenizer) EstimateTokens() uint32 {
	return estimateLineCount(string(t.rest), func(s string) int { return indexByte(s, '\n') })
}

// indexByte returns the index of the first b in s, or -1 if there is none.
// LineTokenizer.Line and both EstimateTokens methods use it.
func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// estimateLineCount implements the estimate_tokens() heuristic: the total
// length divided by the average length of the first 20 lines, scaled back
// up to the full input. Empty input estimates to 100, matching the
// original implementation's fallback for inputs with no lines to sample.
func estimateLineCount(rest string, indexNewline func(string) int) uint32 {
	if len(rest) == 0 {
		return 100
	}
	sampled := 0
	n := 0
	for n < 20 && sampled < len(rest) {
		r := rest[sampled:]
		nl := indexNewline(r)
		if nl == -1 {
			sampled = len(rest)
			break
		}
		sampled += nl + 1
		n++
	}
	if sampled == 0 {
		return 100
	}
	return uint32(len(rest) * 20 / sampled)
}
