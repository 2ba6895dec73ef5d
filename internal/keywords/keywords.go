// Package keywords prepares job keyword lists before they reach the scorer.
package keywords

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Filter represents a single preparation step applied to a keyword list.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, in []string) ([]string, Step, error)
}

// Deps aggregates dependencies shared across all steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a preparation step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains the settings consumed by the steps.
type Config struct {
	Exclude     []string `mapstructure:"exclude"`
	ExcludeFile string   `mapstructure:"exclude-file"`
	Dedupe      bool     `mapstructure:"dedupe"`
}

// Status represents runtime information about a step.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type statusProvider interface {
	Status() Status
}

// Default returns the standard preparation pipeline for cfg.
func Default(cfg *Config) []Filter {
	steps := []Filter{
		NewSplit(),
		NewExclude(),
		NewExcludeFile(),
		NewDedupe(),
	}
	if cfg == nil || !cfg.Dedupe {
		DisableByName(steps, "dedupe", "not requested")
	}
	return steps
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied steps sequentially and returns the resulting list.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, list []string) ([]string, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Debug("keyword step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, list)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("keyword step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		list = next
	}

	return list, nil
}

// Prepare runs the default pipeline over raw keyword inputs and logs the
// step statuses at debug level.
func Prepare(ctx context.Context, cfg *Config, logger *zap.Logger, raw ...string) ([]string, error) {
	steps := Default(cfg)

	list, err := Run(ctx, cfg, Deps{Logger: logger}, steps, raw)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("keyword steps", zap.Any("steps", Describe(steps)))
	}

	return list, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// Split breaks a comma separated keyword string into trimmed, non-empty
// keywords.
func Split(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
