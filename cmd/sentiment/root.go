package main

import (
	"github.com/spacesedan/sentiment/config"
	"github.com/spf13/cobra"
)

type options struct {
	configPath   string
	posThreshold float64
	negThreshold float64
	verbose      bool
	markdown     bool
	summary      bool
	color        string
	file         bool

	envFile   string
	envLoaded bool
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sentiment [flags] <input>",
		Short: "Classify the sentiment of text with VADER",
		Long: `sentiment scores text with the VADER lexicon and labels it Positive,
Negative or Neutral by comparing the compound score with two thresholds.

The input is analyzed as literal text, or with --file as a path whose lines
are analyzed one by one.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file {
				return runFile(cmd, opts, args[0])
			}
			return runText(cmd, opts, args[0])
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.ConfigPath(), "path to the YAML config file")
	flags.Float64Var(&opts.posThreshold, "pos-threshold", 0.05, "compound score at or above which text is Positive")
	flags.Float64Var(&opts.negThreshold, "neg-threshold", -0.05, "compound score at or below which text is Negative")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "show the pos/neg/neu breakdown")
	flags.BoolVar(&opts.markdown, "markdown", false, "strip markdown and links before scoring")
	flags.BoolVar(&opts.summary, "summary", false, "print label totals after a file is analyzed")
	flags.StringVar(&opts.color, "color", "auto", "colorize labels (auto|on|off)")

	rootCmd.Flags().BoolVar(&opts.file, "file", false, "treat input as a file path and analyze it line by line")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newAnalyzeFileCmd(opts))

	return rootCmd
}
