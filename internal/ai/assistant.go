package ai

import (
	"context"
	"errors"

	"github.com/qerope/resume-ats/internal/keywords"
)

// ErrNotConfigured is returned when no analyzer backend is available.
var ErrNotConfigured = errors.New("API key not configured")

// JobAnalysis is the structured summary of a job description.
type JobAnalysis struct {
	Company      string `json:"company"`
	Title        string `json:"title"`
	Requirements string `json:"requirements"`
	Keywords     string `json:"keywords"`
	Shortname    string `json:"shortname"`
	Error        string `json:"error,omitempty"`
}

// KeywordList splits the comma separated keywords into a list.
func (j *JobAnalysis) KeywordList() []string {
	if j == nil {
		return nil
	}
	return keywords.Split(j.Keywords)
}

// Analyzer extracts a JobAnalysis from free-form job description text.
type Analyzer interface {
	Analyze(ctx context.Context, description string) (*JobAnalysis, error)
}

// Unconfigured is an Analyzer used when no API key is set.
type Unconfigured struct{}

func (Unconfigured) Analyze(context.Context, string) (*JobAnalysis, error) {
	return nil, ErrNotConfigured
}
