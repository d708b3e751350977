package main

import (
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "analyze <text>",
		Short:   "Analyze a single piece of text",
		Example: `  sentiment analyze "I love this!" -v`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runText(cmd, opts, args[0])
		},
	}
}

func newAnalyzeFileCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "analyze-file <file>",
		Short:   "Analyze a file line by line (use - for stdin)",
		Example: `  sentiment analyze-file reviews.txt --summary`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, args[0])
		},
	}
}
