package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/riftvcs/histodiff"
	"github.com/riftvcs/histodiff/internal/config"
	"github.com/sirupsen/logrus"
)

const (
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
	colorCyan  = "\x1b[36m"
	colorReset = "\x1b[0m"
)

// runDiff tokenizes before/after per bytesMode, runs the histogram diff,
// and prints the result as a unified-style listing with cfg.ContextLines
// of surrounding equal context around each changed run.
func runDiff(log *logrus.Logger, cfg *config.Config, beforeName, afterName string, before, after []byte, bytesMode bool) error {
	start := time.Now()

	var (
		beforeTokens, afterTokens histodiff.TokenSequence
		removed, added            []bool
		ops                       []histodiff.DiffOp
	)
	opts := histodiff.DiffOptions{MaxChainLen: cfg.MaxChainLen}
	if bytesMode {
		beforeTokens, afterTokens, removed, added = histodiff.DiffBytesWithOptions(before, after, opts)
	} else {
		beforeTokens, afterTokens, removed, added = histodiff.DiffLinesWithOptions(string(before), string(after), opts)
	}
	ops = histodiff.BuildOps(removed, added)

	log.Debugf("diff complete: before_tokens=%d after_tokens=%d ops=%d elapsed=%s",
		len(beforeTokens), len(afterTokens), len(ops), time.Since(start))

	beforeLines := splitKeepTerminators(string(before))
	afterLines := splitKeepTerminators(string(after))

	fmt.Fprintf(os.Stdout, "--- %s\n+++ %s\n", beforeName, afterName)
	printHunks(os.Stdout, ops, beforeLines, afterLines, cfg.ContextLines, cfg.Color)
	return nil
}

func printHunks(w io.Writer, ops []histodiff.DiffOp, before, after []string, context int, color bool) {
	for idx, op := range ops {
		switch op.Type {
		case histodiff.Equal:
			lines := op.BeforeEnd - op.BeforeStart
			printEqualContext(w, before[op.BeforeStart:op.BeforeEnd], context, idx == 0, idx == len(ops)-1, lines)
		case histodiff.Delete:
			printLines(w, before[op.BeforeStart:op.BeforeEnd], "-", colorRed, color)
		case histodiff.Insert:
			printLines(w, after[op.AfterStart:op.AfterEnd], "+", colorGreen, color)
		case histodiff.Modify:
			printLines(w, before[op.BeforeStart:op.BeforeEnd], "-", colorRed, color)
			printLines(w, after[op.AfterStart:op.AfterEnd], "+", colorCyan, color)
		}
	}
}

// printEqualContext prints at most `context` lines from each end of an
// equal run, collapsing a longer run with an ellipsis marker so long
// unchanged stretches don't dominate the output.
func printEqualContext(w io.Writer, lines []string, context int, isFirst, isLast bool, total int) {
	if total <= 2*context {
		printLines(w, lines, " ", "", false)
		return
	}
	if !isFirst {
		printLines(w, lines[:context], " ", "", false)
	}
	fmt.Fprintln(w, "  ...")
	if !isLast {
		printLines(w, lines[total-context:], " ", "", false)
	}
}

func printLines(w io.Writer, lines []string, marker, color string, useColor bool) {
	for _, l := range lines {
		text := marker + " " + strings.TrimRight(l, "\r\n")
		if useColor && color != "" {
			fmt.Fprintln(w, color+text+colorReset)
		} else {
			fmt.Fprintln(w, text)
		}
	}
}

func splitKeepTerminators(s string) []string {
	var lines []string
	for len(s) > 0 {
		if i := strings.IndexByte(s, '\n'); i != -1 {
			lines = append(lines, s[:i+1])
			s = s[i+1:]
			continue
		}
		lines = append(lines, s)
		break
	}
	return lines
}
