// Command histodiff is a command-line front end for the histodiff
// package: it diffs two files and prints the result as a unified-style
// listing of equal, deleted, inserted, and modified line runs.
package main

import (
	"fmt"
	"os"

	"github.com/riftvcs/histodiff/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var (
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "histodiff",
		Short:         "Compare two files with a histogram diff",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a histodiff.toml config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDiffCommand(&configPath, &verbose))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDiffCommand(configPath *string, verbose *bool) *cobra.Command {
	var bytesMode bool

	cmd := &cobra.Command{
		Use:   "diff <before-file> <after-file>",
		Short: "Diff two files and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			log := logrus.New()
			if *verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			log.Debugf("loaded config: max_chain_len=%d context_lines=%d", cfg.MaxChainLen, cfg.ContextLines)

			before, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			after, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			return runDiff(log, cfg, args[0], args[1], before, after, bytesMode)
		},
	}
	cmd.Flags().BoolVar(&bytesMode, "bytes", false, "tokenize by raw bytes instead of UTF-8 strings")
	return cmd
}
