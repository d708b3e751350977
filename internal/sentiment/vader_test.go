package sentiment

import (
	"math"
	"strings"
	"testing"

	"github.com/spacesedan/sentiment/internal/models"
)

func TestVaderScorerKeys(t *testing.T) {
	scores := NewVaderScorer().PolarityScores("I love this!")
	for _, key := range []string{KeyCompound, KeyPositive, KeyNegative, KeyNeutral} {
		if _, ok := scores[key]; !ok {
			t.Fatalf("missing key %q in %v", key, scores)
		}
	}
	sum := scores[KeyPositive] + scores[KeyNegative] + scores[KeyNeutral]
	if math.Abs(sum-1) > 0.01 {
		t.Fatalf("pos+neg+neu = %v, want 1", sum)
	}
}

func TestVaderScorerScenarios(t *testing.T) {
	scorer := NewVaderScorer()
	cases := []struct {
		text string
		want models.Label
	}{
		{"I love this!", models.LabelPositive},
		{"I hate this.", models.LabelNegative},
		{"The sky is blue.", models.LabelNeutral},
	}
	for _, tc := range cases {
		compound := scorer.PolarityScores(tc.text)[KeyCompound]
		if compound < -1 || compound > 1 {
			t.Fatalf("%q: compound %v out of range", tc.text, compound)
		}
		if got := Classify(compound, 0.05, -0.05); got != tc.want {
			t.Fatalf("%q: label = %s (compound %v), want %s", tc.text, got, compound, tc.want)
		}
	}
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Review\n\n**I love** [this product](https://example.com/p)!\n\nSee www.example.com")
	if strings.Contains(got, "http") || strings.Contains(got, "www.") {
		t.Fatalf("links not removed: %q", got)
	}
	if strings.Contains(got, "**") || strings.Contains(got, "#") {
		t.Fatalf("markup not removed: %q", got)
	}
	for _, want := range []string{"Review", "I love", "this product"} {
		if !strings.Contains(got, want) {
			t.Fatalf("ConvertMarkdownToText() = %q, missing %q", got, want)
		}
	}
}

func TestRemoveLinks(t *testing.T) {
	got := RemoveLinks("read [the docs](https://example.com/docs) or https://example.com")
	if got != "read the docs or " {
		t.Fatalf("RemoveLinks() = %q", got)
	}
}
