package histodiff

// Diff computes a histogram diff of before against after, setting
// removed[i] to true for every before-token that isn't part of the chosen
// common-subsequence alignment, and added[j] to true for every such
// after-token. removed and added must already be all-false and exactly as
// long as before and after respectively; numTokens must be at least the
// interned token count, so that the occurrence index it sizes has room for
// every token id that occurs in before. Violating either precondition is a
// programming fault.
//
// Diff never returns an error: algorithmic degeneracy (every candidate
// anchor exceeds MaxChainLen) is a planned branch that delegates the
// current range to a linear-time Myers diff rather than a failure.
//
// Diff uses the package default MaxChainLen as its anchor-rarity cap; use
// DiffWithOptions to override it.
func Diff(before, after TokenSequence, removed, added []bool, numTokens uint32) {
	DiffWithOptions(before, after, removed, added, numTokens, DiffOptions{})
}

// DiffOptions configures a DiffWithOptions call beyond the parameters Diff
// itself takes.
type DiffOptions struct {
	// MaxChainLen overrides the package's MaxChainLen for this call. Zero
	// or negative means use MaxChainLen unchanged.
	MaxChainLen int
}

// DiffWithOptions is Diff with an explicit DiffOptions, most usefully to
// let a caller (e.g. the CLI's configuration file) tune MaxChainLen
// without editing the package constant.
func DiffWithOptions(before, after TokenSequence, removed, added []bool, numTokens uint32, opts DiffOptions) {
	if len(removed) != len(before) || len(added) != len(after) {
		panic("histodiff: mask length must match its token sequence")
	}
	maxChainLen := opts.MaxChainLen
	if maxChainLen <= 0 {
		maxChainLen = MaxChainLen
	}
	e := &engine{index: newOccurrenceIndex(numTokens), maxChainLen: maxChainLen}
	e.run(before, after, removed, added)
}

// engine holds the occurrence index shared across one Diff call's
// recursion. It is rebuilt (after Clear) at every recursion level for the
// current before slice; this is deliberately simpler than incrementally
// maintaining the index and is the correctness baseline this package
// implements.
type engine struct {
	index       *occurrenceIndex
	maxChainLen int
}

// run is the recursive divide-and-conquer driver: it finds the best LCS
// anchor in (before, after), recurses on the partitions to the left of the
// anchor, and tail-iterates on the partitions to the right, so that the
// right-hand recursion never grows the Go call stack.
func (e *engine) run(before, after TokenSequence, removed, added []bool) {
	for {
		if len(before) == 0 {
			fillTrue(added)
			return
		}
		if len(after) == 0 {
			fillTrue(removed)
			return
		}

		e.index.clear()
		e.index.populate(before)

		lcs, ok := findLCS(before, after, e.index, e.maxChainLen)
		if !ok {
			// Every candidate anchor in this range occurs more than
			// maxChainLen times: the histogram heuristic would degrade to
			// quadratic work here, so hand the whole range to Myers.
			myersDiff(before, after, removed, added)
			return
		}
		if lcs.length == 0 {
			// No token at all is shared between before and after in this
			// range: every element on both sides is a change.
			fillTrue(removed)
			fillTrue(added)
			return
		}

		e.run(
			before[:lcs.beforeStart], after[:lcs.afterStart],
			removed[:lcs.beforeStart], added[:lcs.afterStart],
		)

		beforeEnd := lcs.beforeStart + lcs.length
		before = before[beforeEnd:]
		removed = removed[beforeEnd:]

		afterEnd := lcs.afterStart + lcs.length
		after = after[afterEnd:]
		added = added[afterEnd:]
	}
}

func fillTrue(mask []bool) {
	for i := range mask {
		mask[i] = true
	}
}
