package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/qerope/resume-ats/internal/ai"
	"github.com/qerope/resume-ats/internal/ai/gemini"
	"github.com/qerope/resume-ats/internal/secrets"
)

const geminiKeyHint = "set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY"

// newAnalyzer builds the job description analyzer for the configured
// provider. When no API key is set at all the returned error wraps
// ai.ErrNotConfigured.
func newAnalyzer(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Analyzer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if strings.TrimSpace(cfg.Gemini.APIKeyFile) == "" && strings.TrimSpace(cfg.Gemini.APIKey) == "" {
		return nil, fmt.Errorf("%w (%s)", ai.ErrNotConfigured, geminiKeyHint)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   []string{"GEMINI_API_KEY"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, geminiKeyHint)
	}

	genLogger := logger.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAnalyzer(generator, logger.With(zap.String("model", generator.Model())), cfg.Gemini.MaxLogLength), nil
}
