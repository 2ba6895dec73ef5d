package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qerope/resume-ats/internal/keywords"
	"github.com/qerope/resume-ats/internal/server"
)

func validConfig() *Config {
	return &Config{
		Output:   outputText,
		Keywords: &keywords.Config{},
		AI:       &AIConfig{Provider: "gemini", Gemini: &GeminiConfig{MaxRetries: 3}},
		Server:   &server.Config{Addr: ":8080"},
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty output", mutate: func(c *Config) { c.Output = "" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "yaml" }, wantErr: "Config.Output"},
		{name: "unknown provider", mutate: func(c *Config) { c.AI.Provider = "openai" }, wantErr: "Config.AI.Provider"},
		{name: "too many retries", mutate: func(c *Config) { c.AI.Gemini.MaxRetries = 11 }, wantErr: "Config.AI.Gemini.MaxRetries"},
		{name: "negative log length", mutate: func(c *Config) { c.AI.Gemini.MaxLogLength = -1 }, wantErr: "Config.AI.Gemini.MaxLogLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
