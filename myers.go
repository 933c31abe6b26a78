package histodiff

import "math"

// myersDiff fills removed/added for the (before, after) range using a
// bidirectional Myers O(ND) search with the same divide-and-conquer
// structure as the histogram engine's own recursion, but without an
// anchor-rarity heuristic: it is the fallback used when the histogram
// engine can't find a usable anchor, and is guaranteed to make progress
// (linear time) even on inputs built entirely from one repeated token.
func myersDiff(before, after TokenSequence, removed, added []bool) {
	m := &myersState{
		before:  before,
		after:   after,
		removed: removed,
		added:   added,
	}
	n, mLen := len(before), len(after)
	diagSize := n + mLen + 3
	m.fdiag = make([]int, diagSize)
	m.bdiag = make([]int, diagSize)
	m.offset = mLen + 1

	// sqrt(n)*sqrt(m)/4, floored at 256: matches the cost-limit heuristic
	// used elsewhere in the corpus for bidirectional Myers search, so
	// large but non-pathological inputs still terminate promptly.
	m.costLimit = int(math.Sqrt(float64(n)) * math.Sqrt(float64(mLen)) / 4)
	if m.costLimit < 256 {
		m.costLimit = 256
	}

	m.compare(0, n, 0, mLen)
}

type myersState struct {
	before, after  TokenSequence
	removed, added []bool
	fdiag, bdiag   []int
	offset         int
	costLimit      int
}

func (m *myersState) equal(i, j int) bool {
	return m.before[i] == m.after[j]
}

func (m *myersState) markRemoved(lo, hi int) {
	for i := lo; i < hi; i++ {
		m.removed[i] = true
	}
}

func (m *myersState) markAdded(lo, hi int) {
	for i := lo; i < hi; i++ {
		m.added[i] = true
	}
}

// compare recursively diffs before[xoff:xlim] against after[yoff:ylim],
// trimming matching ends first and otherwise splitting at the middle
// snake found by findMiddleSnake.
func (m *myersState) compare(xoff, xlim, yoff, ylim int) {
	for xoff < xlim && yoff < ylim && m.equal(xoff, yoff) {
		xoff++
		yoff++
	}
	for xoff < xlim && yoff < ylim && m.equal(xlim-1, ylim-1) {
		xlim--
		ylim--
	}

	if xoff == xlim {
		m.markAdded(yoff, ylim)
		return
	}
	if yoff == ylim {
		m.markRemoved(xoff, xlim)
		return
	}

	xmid, ymid := m.findMiddleSnake(xoff, xlim, yoff, ylim)
	m.compare(xoff, xmid, yoff, ymid)
	m.compare(xmid, xlim, ymid, ylim)
}

type snakeInfo struct {
	x, y    int
	len     int
	forward bool
}

// findMiddleSnake implements Myers' bidirectional search (1986, section
// 4b) for the optimal split point of the edit graph, falling back to the
// best-scoring diagonal run seen so far (at least 16 tokens long, scored by
// its length and its closeness to the middle) once a cost-limit heuristic
// trips, and to greedySplit if even that comes up empty.
func (m *myersState) findMiddleSnake(xoff, xlim, yoff, ylim int) (int, int) {
	n := xlim - xoff
	mm := ylim - yoff

	if n == 0 {
		return xoff, ylim
	}
	if mm == 0 {
		return xlim, yoff
	}

	delta := n - mm
	deltaOdd := delta&1 != 0
	offset := mm + 1

	fdiag := m.fdiag
	bdiag := m.bdiag
	fdiag[offset+1] = 0
	bdiag[offset+delta-1] = n

	maxD := (n + mm + 1) / 2
	costLimit := maxD
	if m.costLimit > 0 && m.costLimit < maxD {
		costLimit = m.costLimit
	}

	var best snakeInfo
	bestScore := 0
	const significantMatchLen = 16

	for d := 0; d <= maxD; d++ {
		if d > costLimit && bestScore > 0 {
			return snakeSplit(best, xoff, yoff)
		}

		kMin, kMax := clampK(-d, d, mm, n, d)
		for k := kMin; k <= kMax; k += 2 {
			kIdx := offset + k
			if kIdx-1 < 0 || kIdx+1 >= len(fdiag) {
				continue
			}
			var x int
			if k == -d || (k != d && fdiag[kIdx-1] < fdiag[kIdx+1]) {
				x = fdiag[kIdx+1]
			} else {
				x = fdiag[kIdx-1] + 1
			}
			y := x - k
			if y < 0 || y > mm || x < 0 || x > n {
				fdiag[kIdx] = x
				continue
			}
			start := x
			for x < n && y < mm && m.equal(xoff+x, yoff+y) {
				x++
				y++
			}
			fdiag[kIdx] = x
			if snakeLen := x - start; snakeLen >= significantMatchLen {
				if score := snakeLen*2 - abs((x+y)/2-(n+mm)/4); score > bestScore {
					bestScore = score
					best = snakeInfo{x: x, y: y, len: snakeLen, forward: true}
				}
			}
			if deltaOdd && k >= delta-(d-1) && k <= delta+(d-1) {
				bIdx := offset + k - delta
				if bIdx >= 0 && bIdx < len(bdiag) && fdiag[kIdx] >= bdiag[bIdx] {
					return xoff + x, yoff + y
				}
			}
		}

		bkMin, bkMax := clampK(-d, d, mm, n, d)
		for k := bkMin; k <= bkMax; k += 2 {
			kIdx := offset + k
			if kIdx-1 < 0 || kIdx+1 >= len(bdiag) {
				continue
			}
			var x int
			if k == d || (k != -d && bdiag[kIdx-1] < bdiag[kIdx+1]) {
				x = bdiag[kIdx-1]
			} else {
				x = bdiag[kIdx+1] - 1
			}
			y := x - k - delta
			if y < 0 || y > mm || x < 0 || x > n {
				bdiag[kIdx] = x
				continue
			}
			start := x
			for x > 0 && y > 0 && m.equal(xoff+x-1, yoff+y-1) {
				x--
				y--
			}
			bdiag[kIdx] = x
			if snakeLen := start - x; snakeLen >= significantMatchLen {
				if score := snakeLen*2 - abs((x+y)/2-(n+mm)/4); score > bestScore {
					bestScore = score
					best = snakeInfo{x: x, y: y, len: snakeLen, forward: false}
				}
			}
			if !deltaOdd && k+delta >= -d && k+delta <= d {
				fIdx := offset + k + delta
				if fIdx >= 0 && fIdx < len(fdiag) && fdiag[fIdx] >= bdiag[kIdx] {
					fx := fdiag[fIdx]
					return xoff + fx, yoff + fx - (k + delta)
				}
			}
		}

		if d >= costLimit && bestScore > 0 {
			return snakeSplit(best, xoff, yoff)
		}
	}

	if bestScore > 0 {
		return snakeSplit(best, xoff, yoff)
	}
	return m.greedySplit(xoff, xlim, yoff, ylim)
}

func snakeSplit(s snakeInfo, xoff, yoff int) (int, int) {
	return xoff + s.x, yoff + s.y
}

// greedySplit guarantees progress when the bounded search above exhausts
// its budget without finding an overlap or a usable snake: consume a
// matching prefix if one exists, otherwise force a single deletion (or, if
// before is already empty, a single insertion).
func (m *myersState) greedySplit(xoff, xlim, yoff, ylim int) (int, int) {
	n, mm := xlim-xoff, ylim-yoff
	x, y := 0, 0
	for x < n && y < mm && m.equal(xoff+x, yoff+y) {
		x++
		y++
	}
	if x > 0 {
		return xoff + x, yoff + y
	}
	if n > 0 {
		return xoff + 1, yoff
	}
	return xoff, yoff + 1
}

func clampK(kMin, kMax, mm, n, d int) (int, int) {
	if kMin < -mm {
		kMin = -mm
	}
	if kMax > n {
		kMax = n
	}
	if (kMin+d)%2 != 0 {
		kMin++
	}
	return kMin, kMax
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
