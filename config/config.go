package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spacesedan/sentiment/internal/models"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigIO    = errors.New("config file unreadable")
	ErrConfigParse = errors.New("config file invalid")
)

type Config struct {
	Analysis models.AnalysisConfig
	Logging  models.LoggingConfig
}

// Default is the fallback used whenever a config file cannot be loaded. It is
// substituted as a whole, never merged with a partially parsed file.
func Default() Config {
	return Config{
		Analysis: models.AnalysisConfig{
			Thresholds: models.Thresholds{
				Positive: 0.05,
				Negative: -0.05,
			},
			IncludeCompound:   true,
			IncludeIndividual: false,
		},
		Logging: models.LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// fileConfig mirrors the YAML layout. Pointers tell an absent key apart from
// a zero value.
type fileConfig struct {
	Analysis *struct {
		PositiveThreshold *float64 `yaml:"positive_threshold"`
		NegativeThreshold *float64 `yaml:"negative_threshold"`
		IncludeCompound   *bool    `yaml:"include_compound"`
		IncludeIndividual *bool    `yaml:"include_individual"`
	} `yaml:"analysis"`
	Logging *struct {
		Level *string `yaml:"level"`
		File  *string `yaml:"file"`
	} `yaml:"logging"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("[ConfigLoader] %w: %v", ErrConfigIO, err)
	}
	return Parse(data)
}

// Parse decodes a complete config document. Unknown keys, wrong types and
// missing fields are all errors.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return Config{}, fmt.Errorf("[ConfigLoader] %w: %v", ErrConfigParse, err)
	}

	var missing []string
	if raw.Analysis == nil {
		missing = append(missing, "analysis")
	} else {
		if raw.Analysis.PositiveThreshold == nil {
			missing = append(missing, "analysis.positive_threshold")
		}
		if raw.Analysis.NegativeThreshold == nil {
			missing = append(missing, "analysis.negative_threshold")
		}
		if raw.Analysis.IncludeCompound == nil {
			missing = append(missing, "analysis.include_compound")
		}
		if raw.Analysis.IncludeIndividual == nil {
			missing = append(missing, "analysis.include_individual")
		}
	}
	if raw.Logging == nil {
		missing = append(missing, "logging")
	} else {
		if raw.Logging.Level == nil {
			missing = append(missing, "logging.level")
		}
		if raw.Logging.File == nil {
			missing = append(missing, "logging.file")
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("[ConfigLoader] %w: missing %s", ErrConfigParse, strings.Join(missing, ", "))
	}

	return Config{
		Analysis: models.AnalysisConfig{
			Thresholds: models.Thresholds{
				Positive: *raw.Analysis.PositiveThreshold,
				Negative: *raw.Analysis.NegativeThreshold,
			},
			IncludeCompound:   *raw.Analysis.IncludeCompound,
			IncludeIndividual: *raw.Analysis.IncludeIndividual,
		},
		Logging: models.LoggingConfig{
			Level: *raw.Logging.Level,
			File:  *raw.Logging.File,
		},
	}, nil
}
