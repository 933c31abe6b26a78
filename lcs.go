package histodiff

// MaxChainLen is the maximum number of occurrences a token may have in the
// current "before" slice and still be used to seed an LCS extension.
// Tokens occurring more often than this are too common to be a useful
// anchor; lowering this value biases more diffs toward the Myers fallback,
// raising it risks quadratic blowup on pathological input. This is the
// same constant (63) used by Git's and imara-diff's histogram diff.
const MaxChainLen = 63

// lcsCandidate identifies a run that appears verbatim in both before and
// after: before[beforeStart:beforeStart+length] == after[afterStart:afterStart+length].
type lcsCandidate struct {
	beforeStart int
	afterStart  int
	length      int
}

// lcsSearch scans after left-to-right, extending a match at every
// occurrence of a token that's also present in before, and keeps the
// candidate with the lowest minimum occurrence count across the tokens it
// spans (ties broken by longer length, and by scan order beyond that).
type lcsSearch struct {
	best           lcsCandidate
	minOccurrences int
	foundCommon    bool
}

// findLCS returns the best LCS candidate for (before, after) given a
// freshly populated occurrence index over before, or ok=false if every
// token in after that also occurs in before exceeded maxChainLen — the
// signal for the histogram engine to fall back to Myers. Callers that
// don't need a custom cap should pass MaxChainLen.
func findLCS(before, after TokenSequence, idx *occurrenceIndex, maxChainLen int) (lcsCandidate, bool) {
	s := lcsSearch{minOccurrences: maxChainLen + 1}
	pos := 0
	for pos < len(after) {
		tok := after[pos]
		if n := idx.count(tok); n != 0 {
			s.foundCommon = true
			if n <= s.minOccurrences {
				pos = s.extend(before, after, pos, tok, idx)
				continue
			}
		}
		pos++
	}
	if !s.foundCommon || s.minOccurrences <= maxChainLen {
		return s.best, true
	}
	return lcsCandidate{}, false
}

// extend grows every occurrence of token around afterPos into the longest
// match it can, keeping the rarest/longest candidate seen, and returns the
// after-cursor position to resume scanning from.
func (s *lcsSearch) extend(before, after TokenSequence, afterPos int, token Token, idx *occurrenceIndex) int {
	occurrences := idx.positions(token)
	resume := afterPos + 1
	beforePos := int(occurrences[0])
	i := 1
	for {
		occCount := idx.count(token)
		lo, ao := beforePos, afterPos
		for lo > 0 && ao > 0 && before[lo-1] == after[ao-1] {
			lo--
			ao--
			occCount = min(occCount, idx.count(before[lo]))
		}
		hiB, hiA := beforePos+1, afterPos+1
		for hiB < len(before) && hiA < len(after) && before[hiB] == after[hiA] {
			occCount = min(occCount, idx.count(before[hiB]))
			hiB++
			hiA++
		}
		if hiA > resume {
			resume = hiA
		}
		length := hiA - ao
		if occCount < s.minOccurrences || (occCount == s.minOccurrences && length > s.best.length) {
			s.minOccurrences = occCount
			s.best = lcsCandidate{beforeStart: lo, afterStart: ao, length: length}
		}

		// Advance to the next occurrence of token in before that starts
		// after the match we just extended through.
		advanced := false
		for i < len(occurrences) {
			next := int(occurrences[i])
			i++
			if next > hiB-1 {
				beforePos = next
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	return resume
}
