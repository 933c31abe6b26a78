package histodiff

// occurrenceIndex maps Token -> positions within the current "before"
// slice, backed by a ListPool. It is rebuilt (after a Clear) at every
// recursion level of the histogram engine rather than maintained
// incrementally; see engine.go's doc comment for why that's the
// correctness baseline rather than an optimization opportunity.
type occurrenceIndex struct {
	handles []ListHandle // dense, indexed by Token id
	pool    *ListPool
}

// newOccurrenceIndex allocates an index sized for numTokens distinct
// tokens, with the pool's arena hinted at roughly 2x that many elements.
func newOccurrenceIndex(numTokens uint32) *occurrenceIndex {
	return &occurrenceIndex{
		handles: make([]ListHandle, numTokens),
		pool:    NewListPool(2 * numTokens),
	}
}

// clear drops all occurrence data and invalidates every handle, ready for
// the next recursion level's before-slice to be populated.
func (idx *occurrenceIndex) clear() {
	idx.pool.Clear()
	for i := range idx.handles {
		idx.handles[i] = ListHandle{}
	}
}

// populate records the slice-local index of every token in before.
func (idx *occurrenceIndex) populate(before TokenSequence) {
	for i, tok := range before {
		idx.handles[tok] = idx.handles[tok].Push(idx.pool, uint32(i))
	}
}

// positions returns the (slice-local) indices at which tok occurs in the
// populated before slice. The returned view is only valid until the next
// populate/clear call.
func (idx *occurrenceIndex) positions(tok Token) []uint32 {
	return idx.handles[tok].Slice(idx.pool)
}

// count returns the number of times tok occurs in the populated before
// slice. O(1).
func (idx *occurrenceIndex) count(tok Token) int {
	return idx.handles[tok].Len()
}
