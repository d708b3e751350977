package models

type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// SentimentScores holds only the scores that were asked for. A nil field was
// not requested, which is different from a score of zero.
type SentimentScores struct {
	Compound *float64 `json:"compound,omitempty"`
	Positive *float64 `json:"pos,omitempty"`
	Negative *float64 `json:"neg,omitempty"`
	Neutral  *float64 `json:"neu,omitempty"`
}

type SentimentResult struct {
	Text   string          `json:"text"`
	Label  Label           `json:"label"`
	Scores SentimentScores `json:"scores"`
}
