package models

import (
	"errors"
	"fmt"
)

var ErrInvalidThresholds = errors.New("positive threshold must be greater than negative threshold")

type Thresholds struct {
	Positive float64 `json:"positive_threshold" yaml:"positive_threshold"`
	Negative float64 `json:"negative_threshold" yaml:"negative_threshold"`
}

// Validate enforces Positive > Negative. NaN on either side fails.
func (t Thresholds) Validate() error {
	if !(t.Positive > t.Negative) {
		return fmt.Errorf("%w (positive=%g, negative=%g)", ErrInvalidThresholds, t.Positive, t.Negative)
	}
	return nil
}

type AnalysisConfig struct {
	Thresholds        Thresholds `json:"thresholds"`
	IncludeCompound   bool       `json:"include_compound"`
	IncludeIndividual bool       `json:"include_individual"`
}

type LoggingConfig struct {
	Level string `json:"level"`
	File  string `json:"file,omitempty"`
}
