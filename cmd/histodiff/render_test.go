package main

import (
	"bytes"
	"testing"

	"github.com/riftvcs/histodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitKeepTerminators(t *testing.T) {
	assert.Equal(t, []string{"a\n", "b\n", "c"}, splitKeepTerminators("a\nb\nc"))
	assert.Equal(t, []string{"a\n", "b\n"}, splitKeepTerminators("a\nb\n"))
	assert.Nil(t, splitKeepTerminators(""))
}

func TestPrintLinesPlain(t *testing.T) {
	var buf bytes.Buffer
	printLines(&buf, []string{"one\n", "two"}, "-", colorRed, false)
	assert.Equal(t, "- one\n- two\n", buf.String())
}

func TestPrintLinesColor(t *testing.T) {
	var buf bytes.Buffer
	printLines(&buf, []string{"one\n"}, "+", colorGreen, true)
	assert.Equal(t, colorGreen+"+ one"+colorReset+"\n", buf.String())
}

func TestPrintEqualContextCollapsesLongRuns(t *testing.T) {
	lines := []string{"1\n", "2\n", "3\n", "4\n", "5\n", "6\n", "7\n", "8\n"}
	var buf bytes.Buffer
	printEqualContext(&buf, lines, 2, false, false, len(lines))
	out := buf.String()
	require.Contains(t, out, "  1\n")
	require.Contains(t, out, "  2\n")
	require.Contains(t, out, "...")
	require.Contains(t, out, "  7\n")
	require.Contains(t, out, "  8\n")
	require.NotContains(t, out, "  4\n")
}

func TestPrintEqualContextShortRunPrintsEverything(t *testing.T) {
	lines := []string{"1\n", "2\n"}
	var buf bytes.Buffer
	printEqualContext(&buf, lines, 3, true, true, len(lines))
	assert.Equal(t, "  1\n  2\n", buf.String())
}

func TestPrintHunksRendersEachOpKind(t *testing.T) {
	before := []string{"a\n", "b\n", "c\n"}
	after := []string{"a\n", "x\n", "c\n"}
	ops := []histodiff.DiffOp{
		{Type: histodiff.Equal, BeforeStart: 0, BeforeEnd: 1, AfterStart: 0, AfterEnd: 1},
		{Type: histodiff.Modify, BeforeStart: 1, BeforeEnd: 2, AfterStart: 1, AfterEnd: 2},
		{Type: histodiff.Equal, BeforeStart: 2, BeforeEnd: 3, AfterStart: 2, AfterEnd: 3},
	}
	var buf bytes.Buffer
	printHunks(&buf, ops, before, after, 3, false)
	out := buf.String()
	assert.Contains(t, out, "  a")
	assert.Contains(t, out, "- b")
	assert.Contains(t, out, "+ x")
	assert.Contains(t, out, "  c")
}
