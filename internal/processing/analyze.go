package processing

import (
	"log/slog"
	"strings"

	"github.com/spacesedan/sentiment/internal/models"
	"github.com/spacesedan/sentiment/internal/sentiment"
)

type Analyzer struct {
	scorer     sentiment.Scorer
	cfg        models.AnalysisConfig
	preprocess func(string) string
}

type AnalyzerOption func(*Analyzer)

// WithMarkdown reduces markdown input to plain text before scoring.
func WithMarkdown() AnalyzerOption {
	return func(a *Analyzer) {
		a.preprocess = sentiment.ConvertMarkdownToText
	}
}

func NewAnalyzer(scorer sentiment.Scorer, cfg models.AnalysisConfig, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{scorer: scorer, cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores and classifies text. Blank text is skipped and reported
// with ok == false. The scorer receives the untrimmed text because case and
// punctuation change the score.
func (a *Analyzer) Analyze(text string) (models.SentimentResult, bool) {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{}, false
	}

	input := text
	if a.preprocess != nil {
		input = a.preprocess(text)
	}

	scores := a.scorer.PolarityScores(input)
	compound := scores[sentiment.KeyCompound]
	label := sentiment.Classify(compound, a.cfg.Thresholds.Positive, a.cfg.Thresholds.Negative)

	slog.Debug("[Analyzer] Scored text",
		slog.Float64("compound", compound),
		slog.String("label", string(label)))

	result := models.SentimentResult{
		Text:  text,
		Label: label,
	}
	if a.cfg.IncludeCompound {
		result.Scores.Compound = float64Ptr(compound)
	}
	if a.cfg.IncludeIndividual {
		result.Scores.Positive = float64Ptr(scores[sentiment.KeyPositive])
		result.Scores.Negative = float64Ptr(scores[sentiment.KeyNegative])
		result.Scores.Neutral = float64Ptr(scores[sentiment.KeyNeutral])
	}

	return result, true
}

func float64Ptr(v float64) *float64 {
	return &v
}
