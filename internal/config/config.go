package config

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/tatianab/detective-quest/internal/errors"
)

// Config holds the application configuration.
type Config struct {
	// GeminiAPIKey enables generated room narration. Optional.
	GeminiAPIKey string `env:"GEMINI_API_KEY" envDefault:""`
	// CaseFile is a YAML case definition. Empty means the built-in mansion.
	CaseFile string `env:"DETECTIVE_CASE_FILE" envDefault:""`
	LogFile  string `env:"DETECTIVE_LOG_FILE" envDefault:"detective.log"`
	LogLevel string `env:"DETECTIVE_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads the configuration from environment variables. Variables from a .env file in the working
// directory are added first when the file exists; variables already set in the environment win.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup populates a Config using lookupEnv, which has the signature of [os.LookupEnv].
func FromLookup(lookupEnv func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := Populate(&cfg, lookupEnv); err != nil {
		return nil, errors.Wrap(err, "populate config", slog.Any("variables", Variables()))
	}
	return &cfg, nil
}

// Variables lists the environment variables Config reads.
func Variables() []string {
	return envFields(&Config{})
}
