package cmd

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/qerope/resume-ats/internal/keywords"
	"github.com/qerope/resume-ats/internal/server"
)

type Config struct {
	Output   string           `mapstructure:"output" validate:"omitempty,oneof=text json"`
	Keywords *keywords.Config `mapstructure:"keywords"`
	AI       *AIConfig        `mapstructure:"ai"`
	Server   *server.Config   `mapstructure:"server"`
}

type AIConfig struct {
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=gemini"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries" validate:"gte=0,lte=10"`
	MaxLogLength int    `mapstructure:"max-log-length" validate:"gte=0"`
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Keywords == nil {
		config.Keywords = &keywords.Config{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Server == nil {
		config.Server = &server.Config{}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
