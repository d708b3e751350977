package reporting

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spacesedan/sentiment/internal/models"
)

// MaxDisplayWidth is the most characters of the input echoed per result.
const MaxDisplayWidth = 57

// Truncate keeps the first width characters of text. No ellipsis is added.
func Truncate(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	n := 0
	for i := range text {
		if n == width {
			return text[:i]
		}
		n++
	}
	return text
}

type Reporter struct {
	out    io.Writer
	errOut io.Writer
	width  int
	colors map[models.Label]*color.Color
	counts map[models.Label]int
}

type Option func(*Reporter)

// WithColor turns label colouring on or off regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		for _, c := range r.colors {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

func WithWidth(width int) Option {
	return func(r *Reporter) {
		r.width = width
	}
}

func New(out, errOut io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		errOut: errOut,
		width:  MaxDisplayWidth,
		colors: map[models.Label]*color.Color{
			models.LabelPositive: color.New(color.FgGreen, color.Bold),
			models.LabelNegative: color.New(color.FgRed, color.Bold),
			models.LabelNeutral:  color.New(color.FgYellow),
		},
		counts: make(map[models.Label]int),
	}
	WithColor(false)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes one result. line > 0 adds a "Line <n>: " prefix.
func (r *Reporter) Report(line int, res models.SentimentResult) error {
	r.counts[res.Label]++

	prefix := ""
	if line > 0 {
		prefix = fmt.Sprintf("Line %d: ", line)
	}

	label := string(res.Label)
	if c, ok := r.colors[res.Label]; ok {
		label = c.Sprint(label)
	}

	display := Truncate(res.Text, r.width)
	var err error
	if res.Scores.Compound != nil {
		_, err = fmt.Fprintf(r.out, "%s%s: %s (%.3f)\n", prefix, label, display, *res.Scores.Compound)
	} else {
		_, err = fmt.Fprintf(r.out, "%s%s: %s\n", prefix, label, display)
	}
	if err != nil {
		return fmt.Errorf("[Reporter] write result: %w", err)
	}

	s := res.Scores
	if s.Positive != nil && s.Negative != nil && s.Neutral != nil {
		if _, err := fmt.Fprintf(r.out, "  pos: %.3f, neg: %.3f, neu: %.3f\n", *s.Positive, *s.Negative, *s.Neutral); err != nil {
			return fmt.Errorf("[Reporter] write scores: %w", err)
		}
	}
	return nil
}

func (r *Reporter) ReportLineError(line int, err error) {
	fmt.Fprintf(r.errOut, "Line %d: Error reading - %v\n", line, err)
}

// Summary writes the per-label totals of everything reported so far.
func (r *Reporter) Summary() error {
	pos, neg, neu := r.counts[models.LabelPositive], r.counts[models.LabelNegative], r.counts[models.LabelNeutral]
	_, err := fmt.Fprintf(r.out, "Analyzed %d lines: %d positive, %d negative, %d neutral\n", pos+neg+neu, pos, neg, neu)
	if err != nil {
		return fmt.Errorf("[Reporter] write summary: %w", err)
	}
	return nil
}
