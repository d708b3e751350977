package sentiment

import "github.com/spacesedan/sentiment/internal/models"

// Classify maps a compound score onto a label. Boundaries are inclusive, so
// when pos == neg a score equal to both is Positive.
func Classify(compound, pos, neg float64) models.Label {
	if compound >= pos {
		return models.LabelPositive
	} else if compound <= neg {
		return models.LabelNegative
	}
	return models.LabelNeutral
}
