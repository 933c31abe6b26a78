// Package histodiff implements a histogram-based line/token diff: the
// computational kernel that decides which elements of a "before" sequence
// were removed and which elements of an "after" sequence were added.
//
// The core algorithm recursively partitions the two sequences around a
// longest-common-subsequence anchor chosen from the rarest shared token,
// falling back to a linear-time Myers diff when no such anchor exists. A
// postprocessing pass then slides the resulting edit hunks across runs of
// equal boundary tokens so that adjacent additions and removals read as a
// single modification wherever possible.
package histodiff

// Token is an opaque handle for an interned line (or other comparable
// unit). Two tokens are equal iff the strings/bytes they were interned from
// are equal; tokens carry no ordering beyond that.
type Token uint32

// TokenSequence is an ordered, 0-indexed sequence of tokens.
type TokenSequence []Token
