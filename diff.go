package histodiff

// DiffLines tokenizes a and b into lines, runs the histogram diff, and
// canonicalizes the result with Postprocess. It is the convenience entry
// point most callers want; DiffLines(a, b) followed by BuildOps is
// equivalent to a single call to DiffOpsLines. It uses the package
// default MaxChainLen; use DiffLinesWithOptions to override it.
func DiffLines(a, b string) (before, after TokenSequence, removed, added []bool) {
	return DiffLinesWithOptions(a, b, DiffOptions{})
}

// DiffLinesWithOptions is DiffLines with an explicit DiffOptions, most
// usefully to carry a configured MaxChainLen down into the engine.
func DiffLinesWithOptions(a, b string, opts DiffOptions) (before, after TokenSequence, removed, added []bool) {
	in := NewInterner(int(Lines(a).EstimateTokens()) + int(Lines(b).EstimateTokens()))
	before = InternLines(in, Lines(a))
	after = InternLines(in, Lines(b))

	removed = make([]bool, len(before))
	added = make([]bool, len(after))
	DiffWithOptions(before, after, removed, added, in.NumTokens(), opts)
	Postprocess(removed, added, before, after)
	return before, after, removed, added
}

// DiffBytes is DiffLines' byte-oriented counterpart, tokenizing with
// ByteLines so that no encoding is assumed for a and b. As with DiffLines,
// line-terminator changes between a and b are observable in the result.
func DiffBytes(a, b []byte) (before, after TokenSequence, removed, added []bool) {
	return DiffBytesWithOptions(a, b, DiffOptions{})
}

// DiffBytesWithOptions is DiffBytes with an explicit DiffOptions.
func DiffBytesWithOptions(a, b []byte, opts DiffOptions) (before, after TokenSequence, removed, added []bool) {
	in := NewInterner(int(ByteLines(a).EstimateTokens()) + int(ByteLines(b).EstimateTokens()))
	before = InternByteLines(in, ByteLines(a))
	after = InternByteLines(in, ByteLines(b))

	removed = make([]bool, len(before))
	added = make([]bool, len(after))
	DiffWithOptions(before, after, removed, added, in.NumTokens(), opts)
	Postprocess(removed, added, before, after)
	return before, after, removed, added
}

// DiffOpsLines runs DiffLines and renders the result as DiffOps.
func DiffOpsLines(a, b string) []DiffOp {
	_, _, removed, added := DiffLines(a, b)
	return BuildOps(removed, added)
}

// DiffOpsBytes runs DiffBytes and renders the result as DiffOps.
func DiffOpsBytes(a, b []byte) []DiffOp {
	_, _, removed, added := DiffBytes(a, b)
	return BuildOps(removed, added)
}
