package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Name of the optional config file (without extension) searched in the working directory.
const FILE_NAME = "flashcards"

type Config struct {
	Env                string        `mapstructure:"env" validate:"oneof=development production"`
	ProfilePath        string        `mapstructure:"profile_path" validate:"required"`
	JournalPath        string        `mapstructure:"journal_path" validate:"required"`
	ReportPath         string        `mapstructure:"report_path" validate:"required"`
	JournalRetention   time.Duration `mapstructure:"journal_retention" validate:"min=0"`
	JournalMaxSessions uint32        `mapstructure:"journal_max_sessions" validate:"min=1"`
	Window             WindowConfig  `mapstructure:"window"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width" validate:"min=200"`
	Height float32 `mapstructure:"height" validate:"min=200"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("profile_path", "user_profile.json")
	v.SetDefault("journal_path", "flashcards.sqlite")
	v.SetDefault("report_path", "progress_report.xlsx")
	v.SetDefault("journal_retention", 30*24*time.Hour)
	v.SetDefault("journal_max_sessions", 20)
	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
}

// Reads flashcards.yaml (or any other format viper supports) from the given
// directories. A missing file is not an error: defaults are used.
func Init(paths ...string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName(FILE_NAME)

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return unmarshal(v)
}

// Reads the config from the given file.
func FromFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
