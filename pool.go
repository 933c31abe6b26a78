package histodiff

// ListPool is a pool-allocated backing store for many small, growable
// integer lists, addressed by ListHandle. All lists sharing a ListPool
// grow independently but share one arena, so that rebuilding an occurrence
// index at every recursion level of the histogram engine doesn't thrash
// the allocator: Clear reuses the arena's capacity instead of freeing it.
type ListPool struct {
	arena []uint32
}

// sizeClasses are the capacities a list is promoted through as it grows.
// A list starts in the smallest class that fits its first element and is
// relocated to the next class (copying its contents) whenever it outgrows
// its current one.
var sizeClasses = [...]int{4, 8, 16, 32, 64, 128, 256}

// NewListPool returns a ListPool with its arena preallocated to roughly
// initialCapacity elements; the arena still grows on demand beyond that.
func NewListPool(initialCapacity uint32) *ListPool {
	return &ListPool{arena: make([]uint32, 0, initialCapacity)}
}

// Clear releases all storage held by the pool and invalidates every
// handle previously issued against it. It does not shrink the underlying
// arena, so repeated Clear+repopulate cycles (as done once per recursion
// level of the histogram engine) reuse the same backing storage.
func (p *ListPool) Clear() {
	p.arena = p.arena[:0]
}

// ListHandle addresses a growable list within a ListPool. The zero value
// denotes an empty list and is always safe to query or push into.
type ListHandle struct {
	start int32
	len   int32
	cap   int32
}

// Len returns the number of elements in h. O(1).
func (h ListHandle) Len() int {
	return int(h.len)
}

// Slice returns a view of h's elements within p. The view is invalidated
// by any subsequent Push on h (a growing list may relocate within the
// arena); callers must not retain it across a Push call.
func (h ListHandle) Slice(p *ListPool) []uint32 {
	return p.arena[h.start : h.start+h.len]
}

// Push appends value to the list addressed by h, returning the (possibly
// relocated) handle. Amortized O(1); a handle grown past its current size
// class is copied to a freshly allocated run at the end of the arena.
func (h ListHandle) Push(p *ListPool, value uint32) ListHandle {
	if h.len < h.cap {
		p.arena[h.start+h.len] = value
		h.len++
		return h
	}
	newCap := nextSizeClass(int(h.len) + 1)
	start := int32(len(p.arena))
	p.arena = append(p.arena, make([]uint32, newCap)...)
	if h.len > 0 {
		copy(p.arena[start:], p.arena[h.start:h.start+h.len])
	}
	h.start = start
	h.cap = int32(newCap)
	p.arena[h.start+h.len] = value
	h.len++
	return h
}

func nextSizeClass(need int) int {
	for _, c := range sizeClasses {
		if c >= need {
			return c
		}
	}
	// Beyond the largest named class, round up to the next power of two.
	c := sizeClasses[len(sizeClasses)-1]
	for c < need {
		c *= 2
	}
	return c
}
