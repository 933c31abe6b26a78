// Command histodiff-bench cross-checks histodiff's output against
// diffmatchpatch on the same inputs and reports operation counts and
// timings, so a regression in anchor selection or postprocessing shows up
// as a change in change-region count rather than only in a benchmark
// number.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/riftvcs/histodiff"
	godiff "github.com/sergi/go-diff/diffmatchpatch"
)

func main() {
	testCases := []struct {
		name string
		a, b []string
	}{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Prose with common words",
			a:    strings.Split("The quick brown fox jumps over the lazy dog in the park", " "),
			b:    strings.Split("A slow red fox leaps over the sleeping cat in the garden", " "),
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}

	largeA := generateLargeText(500, 0)
	largeB := generateLargeText(500, 42)
	testCases = append(testCases, struct {
		name string
		a, b []string
	}{
		name: "Large file (500 lines, scattered changes)",
		a:    largeA,
		b:    largeB,
	})

	for _, tc := range testCases {
		fmt.Printf("\n=== %s ===\n", tc.name)
		fmt.Printf("before: %d elements, after: %d elements\n", len(tc.a), len(tc.b))

		aText := strings.Join(tc.a, "\n") + "\n"
		bText := strings.Join(tc.b, "\n") + "\n"

		start := time.Now()
		ops := histodiff.DiffOpsLines(aText, bText)
		histodiffTime := time.Since(start)

		dmp := godiff.New()
		start = time.Now()
		goDiffs := dmp.DiffMain(aText, bText, true)
		goDiffTime := time.Since(start)

		histodiffStats := analyzeHistodiff(ops)
		goDiffStats := analyzeGoDiff(goDiffs)

		fmt.Printf("\nhistodiff: %v\n", histodiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d, Modify: %d)\n",
			histodiffStats.total, histodiffStats.equal, histodiffStats.delete, histodiffStats.insert, histodiffStats.modify)
		fmt.Printf("  Change regions: %d\n", histodiffStats.changeRegions)

		fmt.Printf("\ngo-diff:   %v\n", goDiffTime)
		fmt.Printf("  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
			goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
		fmt.Printf("  Change regions: %d\n", goDiffStats.changeRegions)

		if len(tc.a) <= 20 {
			fmt.Println("\nhistodiff output:")
			for _, op := range ops {
				switch op.Type {
				case histodiff.Equal:
					fmt.Printf("  = %v\n", tc.a[op.BeforeStart:op.BeforeEnd])
				case histodiff.Delete:
					fmt.Printf("  - %v\n", tc.a[op.BeforeStart:op.BeforeEnd])
				case histodiff.Insert:
					fmt.Printf("  + %v\n", tc.b[op.AfterStart:op.AfterEnd])
				case histodiff.Modify:
					fmt.Printf("  ~ %v -> %v\n", tc.a[op.BeforeStart:op.BeforeEnd], tc.b[op.AfterStart:op.AfterEnd])
				}
			}
		}
	}
}

type diffStats struct {
	total, equal, delete, insert, modify int
	changeRegions                        int
}

func analyzeHistodiff(ops []histodiff.DiffOp) diffStats {
	var s diffStats
	s.total = len(ops)
	for _, op := range ops {
		switch op.Type {
		case histodiff.Equal:
			s.equal++
		case histodiff.Delete:
			s.delete++
			s.changeRegions++
		case histodiff.Insert:
			s.insert++
			s.changeRegions++
		case histodiff.Modify:
			s.modify++
			s.changeRegions++
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
		case godiff.DiffDelete:
			s.delete++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		case godiff.DiffInsert:
			s.insert++
			if !inChange {
				s.changeRegions++
				inChange = true
			}
		}
	}
	return s
}

// generateLargeText synthesizes a line corpus out of histodiff's own
// vocabulary (token/anchor/occurrence/histogram terms), so the "large
// file" benchmark case exercises a realistic mix of rare and common
// tokens instead of arbitrary prose. seed varies both the word sequence
// and the positions of the injected changed lines between the "before"
// and "after" corpora, so the two copies differ at scattered points.
func generateLargeText(lines int, seed int) []string {
	words := []string{"token", "anchor", "occurrence", "histogram", "chain", "rarity",
		"lcs", "myers", "snake", "hunk", "postprocess", "slide", "interner",
		"engine", "recursion", "mask", "removed", "added", "index", "pool",
		"handle", "sequence", "diff", "candidate"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "anchor rewritten at line " + fmt.Sprint(i)
	}

	return result
}
