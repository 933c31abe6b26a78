package histodiff

import "testing"

func TestMyersDiffIdenticalSequences(t *testing.T) {
	before := TokenSequence{0, 1, 2, 3}
	after := TokenSequence{0, 1, 2, 3}
	removed := make([]bool, len(before))
	added := make([]bool, len(after))

	myersDiff(before, after, removed, added)

	if !allFalse(removed) || !allFalse(added) {
		t.Errorf("removed=%v added=%v, want all false", removed, added)
	}
}

func TestMyersDiffDisjointSequences(t *testing.T) {
	before := TokenSequence{0, 1}
	after := TokenSequence{2, 3}
	removed := make([]bool, len(before))
	added := make([]bool, len(after))

	myersDiff(before, after, removed, added)

	if !allTrue(removed) || !allTrue(added) {
		t.Errorf("removed=%v added=%v, want all true", removed, added)
	}
}

func TestMyersDiffSingleTokenSubstitution(t *testing.T) {
	before := TokenSequence{0, 1, 2}
	after := TokenSequence{0, 3, 2}
	removed := make([]bool, 3)
	added := make([]bool, 3)

	myersDiff(before, after, removed, added)

	wantRemoved := []bool{false, true, false}
	wantAdded := []bool{false, true, false}
	for i := range wantRemoved {
		if removed[i] != wantRemoved[i] {
			t.Errorf("removed[%d] = %v, want %v", i, removed[i], wantRemoved[i])
		}
		if added[i] != wantAdded[i] {
			t.Errorf("added[%d] = %v, want %v", i, added[i], wantAdded[i])
		}
	}
}

func TestMyersDiffPureInsertionAtEnd(t *testing.T) {
	before := TokenSequence{0, 1}
	after := TokenSequence{0, 1, 2, 3}
	removed := make([]bool, 2)
	added := make([]bool, 4)

	myersDiff(before, after, removed, added)

	if !allFalse(removed) {
		t.Errorf("removed = %v, want all false", removed)
	}
	want := []bool{false, false, true, true}
	for i := range want {
		if added[i] != want[i] {
			t.Errorf("added[%d] = %v, want %v", i, added[i], want[i])
		}
	}
}

func TestMyersDiffRepeatedTokenDoesNotPanic(t *testing.T) {
	// A degenerate input built from one repeated token: the histogram
	// engine would refuse this as an anchor (see
	// TestFindLCSExceedsMaxChainLenFallsBackToMyers), so this is exactly
	// the shape of input myersDiff must handle directly.
	n := 300
	before := make(TokenSequence, n)
	after := make(TokenSequence, n+5)
	removed := make([]bool, n)
	added := make([]bool, n+5)

	myersDiff(before, after, removed, added)

	matched := 0
	for _, v := range removed {
		if !v {
			matched++
		}
	}
	if matched == 0 {
		t.Error("expected at least some tokens to match in an all-equal repeated-token input")
	}
}

func TestClampKAppliesParityAdjustment(t *testing.T) {
	kMin, kMax := clampK(-3, 3, 10, 10, 2)
	if (kMin+2)%2 != 0 {
		t.Errorf("clampK did not adjust kMin=%d to match parity of d=2", kMin)
	}
	if kMax != 3 {
		t.Errorf("kMax = %d, want 3", kMax)
	}
}

func TestClampKRespectsBounds(t *testing.T) {
	kMin, kMax := clampK(-10, 10, 2, 3, 0)
	if kMin < -2 {
		t.Errorf("kMin = %d, want >= -2 (bounded by mm)", kMin)
	}
	if kMax > 3 {
		t.Errorf("kMax = %d, want <= 3 (bounded by n)", kMax)
	}
}

func TestAbs(t *testing.T) {
	if abs(-5) != 5 || abs(5) != 5 || abs(0) != 0 {
		t.Error("abs returned an unexpected value")
	}
}
