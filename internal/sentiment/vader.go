package sentiment

import (
	"github.com/jonreiter/govader"
)

// Score keys returned by every Scorer.
const (
	KeyCompound = "compound"
	KeyPositive = "pos"
	KeyNegative = "neg"
	KeyNeutral  = "neu"
)

// Scorer returns polarity scores keyed by KeyCompound, KeyPositive,
// KeyNegative and KeyNeutral. Callers read missing keys as zero.
type Scorer interface {
	PolarityScores(text string) map[string]float64
}

type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *VaderScorer) PolarityScores(text string) map[string]float64 {
	s := v.analyzer.PolarityScores(text)

	return map[string]float64{
		KeyCompound: s.Compound,
		KeyPositive: s.Positive,
		KeyNegative: s.Negative,
		KeyNeutral:  s.Neutral,
	}
}
