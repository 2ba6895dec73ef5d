package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/qerope/resume-ats/internal/ai"
	"github.com/qerope/resume-ats/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
}

//go:embed prompt.md
var systemPrompt string

const (
	defaultMaxLogLength = 200
	shortnamePrefix     = "resume_"
	maxShortnameParts   = 3
)

// Analyzer turns job descriptions into ai.JobAnalysis values using Gemini.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Analyzer = (*Analyzer)(nil)

func NewAnalyzer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

type rawAnalysis struct {
	Company      string `mapstructure:"company"`
	Title        string `mapstructure:"job_title"`
	Requirements string `mapstructure:"job_requirements"`
	Keywords     string `mapstructure:"job_keywords"`
	Shortname    string `mapstructure:"job_shortname"`
}

func (a *Analyzer) Analyze(ctx context.Context, description string) (*ai.JobAnalysis, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.New("job description is required")
	}
	if a == nil || a.generator == nil {
		return nil, ai.ErrNotConfigured
	}

	a.logger.Debug("gemini job analysis request",
		zap.Int("description_length", utf8.RuneCountInString(description)),
		zap.String("description_preview", utils.TruncateForLog(description, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemPrompt, description)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini job analysis response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseResponse(raw)
}

func parseResponse(raw string) (*ai.JobAnalysis, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var out rawAnalysis
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(joinListHook),
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	return &ai.JobAnalysis{
		Company:      strings.TrimSpace(out.Company),
		Title:        strings.TrimSpace(out.Title),
		Requirements: strings.TrimSpace(out.Requirements),
		Keywords:     strings.TrimSpace(out.Keywords),
		Shortname:    Shortname(out.Shortname),
	}, nil
}

// joinListHook accepts keyword arrays where a comma separated string is expected.
func joinListHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	list, ok := data.([]any)
	if !ok || to.Kind() != reflect.String {
		return data, nil
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		parts = append(parts, strings.TrimSpace(fmt.Sprint(item)))
	}
	return strings.Join(parts, ", "), nil
}

// Shortname normalizes a model supplied role identifier to lowercase letters
// and underscores, keeps at most three parts and adds the resume_ prefix.
func Shortname(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, shortnamePrefix)

	var b strings.Builder
	for _, r := range s {
		if r < 'a' || r > 'z' {
			r = '_'
		}
		b.WriteRune(r)
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	if len(parts) > maxShortnameParts {
		parts = parts[:maxShortnameParts]
	}
	return shortnamePrefix + strings.Join(parts, "_")
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
