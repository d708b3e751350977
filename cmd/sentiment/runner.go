package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/sentiment/config"
	"github.com/spacesedan/sentiment/internal/logging"
	"github.com/spacesedan/sentiment/internal/processing"
	"github.com/spacesedan/sentiment/internal/reporting"
	"github.com/spacesedan/sentiment/internal/sentiment"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// setup loads configuration, starts the logger and validates the effective
// thresholds. An error here ends the run before anything is analyzed.
func setup(cmd *cobra.Command, opts *options) (*processing.Analyzer, *reporting.Reporter, error) {
	cfg, loadErr := config.Load(opts.configPath)
	if loadErr != nil {
		cfg = config.Default()
	}

	logging.InitLogger(cfg.Logging, cmd.ErrOrStderr())
	if loadErr != nil {
		slog.Warn("[Config] Failed to load config, using defaults",
			slog.String("path", opts.configPath),
			slog.String("error", loadErr.Error()))
	} else {
		slog.Debug("[Config] Loaded config", slog.String("path", opts.configPath))
	}
	if opts.envLoaded {
		slog.Debug("[Config] Loaded env file", slog.String("file", opts.envFile))
	}

	analysis := cfg.Analysis
	flags := cmd.Flags()
	if flags.Changed("pos-threshold") {
		analysis.Thresholds.Positive = opts.posThreshold
	}
	if flags.Changed("neg-threshold") {
		analysis.Thresholds.Negative = opts.negThreshold
	}
	if opts.verbose {
		analysis.IncludeIndividual = true
	}
	if err := analysis.Thresholds.Validate(); err != nil {
		return nil, nil, err
	}

	useColor, err := resolveColor(opts.color, cmd)
	if err != nil {
		return nil, nil, err
	}

	var analyzerOpts []processing.AnalyzerOption
	if opts.markdown {
		analyzerOpts = append(analyzerOpts, processing.WithMarkdown())
	}

	analyzer := processing.NewAnalyzer(sentiment.NewVaderScorer(), analysis, analyzerOpts...)
	reporter := reporting.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), reporting.WithColor(useColor))
	return analyzer, reporter, nil
}

func resolveColor(mode string, cmd *cobra.Command) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, on or off)", mode)
	}
}

func runText(cmd *cobra.Command, opts *options, text string) error {
	analyzer, reporter, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	var reportErr error
	processing.EachText(text, func(u processing.Unit) {
		reportErr = analyzeUnit(analyzer, reporter, u)
	})
	return reportErr
}

func runFile(cmd *cobra.Command, opts *options, path string) error {
	analyzer, reporter, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	in, err := processing.OpenInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	slog.Debug("[Dispatcher] Analyzing file", slog.String("path", path))

	var reportErr error
	err = processing.EachLine(in, func(u processing.Unit) {
		if reportErr != nil {
			return
		}
		reportErr = analyzeUnit(analyzer, reporter, u)
	})
	if err != nil {
		return err
	}
	if reportErr != nil {
		return reportErr
	}

	if opts.summary {
		return reporter.Summary()
	}
	return nil
}

func analyzeUnit(analyzer *processing.Analyzer, reporter *reporting.Reporter, u processing.Unit) error {
	if u.Err != nil {
		reporter.ReportLineError(u.Line, u.Err)
		return nil
	}

	result, ok := analyzer.Analyze(u.Text)
	if !ok {
		return nil
	}
	return reporter.Report(u.Line, result)
}
