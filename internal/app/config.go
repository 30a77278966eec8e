// Package app holds runtime configuration for the finsheet command.
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every configuration variable (FINSHEET_LOG_FORMAT, ...).
const EnvPrefix = "FINSHEET"

// Config holds runtime configuration for the command.
type Config struct {
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty" validate:"oneof=json pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	SheetName        string `envconfig:"SHEET_NAME" default:"Data Sheet" validate:"required,max=31"`
	MaxWorkbookBytes int64  `envconfig:"MAX_WORKBOOK_BYTES" default:"52428800" validate:"gt=0"`
	Workers          int    `envconfig:"WORKERS" default:"4" validate:"min=1,max=64"`
}

// LoadConfig reads configuration from an optional .env file and the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
