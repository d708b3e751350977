package config

import (
	"os"

	"github.com/subosito/gotenv"
)

const (
	EnvConfigPath = "SENTIMENT_CONFIG"
	EnvAppEnv     = "APP_ENV"

	DefaultConfigPath = "config.yaml"
)

// LoadEnv loads config/envs/.env.<env>, or .env when env is empty, into the
// process environment. Variables already set are left alone. It reports the
// file it tried and whether it was loaded.
func LoadEnv(env string) (string, bool) {
	envFile := ".env"
	if env != "" {
		envFile = "config/envs/.env." + env
	}
	if err := gotenv.Load(envFile); err != nil {
		return envFile, false
	}
	return envFile, true
}

// ConfigPath is the --config default: $SENTIMENT_CONFIG or config.yaml.
func ConfigPath() string {
	if p, ok := os.LookupEnv(EnvConfigPath); ok && p != "" {
		return p
	}
	return DefaultConfigPath
}
