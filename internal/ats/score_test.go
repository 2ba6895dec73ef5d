package ats

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qerope/resume-ats/internal/resume"
)

func sectionByName(t *testing.T, result *Result, name string) SectionScore {
	t.Helper()
	section, ok := result.Section(name)
	require.True(t, ok, "section %q not found", name)
	return section
}

func TestScoreEmptyResume(t *testing.T) {
	result := Score(&resume.Document{}, nil)

	names := make([]string, 0, len(result.SectionScores))
	for _, s := range result.SectionScores {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		SectionBasics, SectionWork, SectionEducation, SectionSkills, SectionProjects, SectionFormatting,
	}, names)

	basics := sectionByName(t, result, SectionBasics)
	assert.Equal(t, 0, basics.Score)
	assert.Equal(t, "Missing name. Missing email. Missing phone number. Missing location information. "+
		"Missing professional summary. No professional online profiles included", basics.Feedback)

	assert.Equal(t, "No work experience listed", sectionByName(t, result, SectionWork).Feedback)
	assert.Equal(t, "No education listed", sectionByName(t, result, SectionEducation).Feedback)
	assert.Equal(t, "No skills listed", sectionByName(t, result, SectionSkills).Feedback)
	assert.Equal(t, "No projects listed", sectionByName(t, result, SectionProjects).Feedback)

	formatting := sectionByName(t, result, SectionFormatting)
	assert.Equal(t, 2, formatting.Score)
	assert.Equal(t, "Missing standard resume sections", formatting.Feedback)

	// 2 of 90 points.
	assert.Equal(t, 2, result.OverallScore)
	assert.Empty(t, result.KeywordMatches)
	assert.NotNil(t, result.KeywordMatches)
	assert.Equal(t, []string{SuggestContact, SuggestWork, SuggestSkills}, result.Suggestions)
}

func TestScoreNilDocument(t *testing.T) {
	assert.Equal(t, Score(&resume.Document{}, nil), Score(nil, nil))
}

func TestScoreEmptyBelowPopulated(t *testing.T) {
	empty := Score(&resume.Document{}, nil)
	full := Score(resume.Example(), nil)

	assert.Less(t, empty.OverallScore, full.OverallScore)
}

func TestScoreIsIdempotent(t *testing.T) {
	doc := resume.Example()
	keywords := []string{"Go", "Kubernetes", "python", "Terraform", "rust"}

	first, err := json.Marshal(Score(doc, keywords))
	require.NoError(t, err)
	second, err := json.Marshal(Score(doc, keywords))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestScoreInvariants(t *testing.T) {
	long := strings.Repeat("Increased throughput by 40% for 2 million users. ", 10)
	docs := map[string]*resume.Document{
		"empty":   {},
		"example": resume.Example(),
		"verbose": {
			Basics: resume.Basics{
				Name: "A", Email: "a@example.com", Phone: "1", Summary: long,
				Location: &resume.Location{City: "X"},
				Profiles: make([]resume.Profile, 10),
			},
			Work:      repeatWork(12, resume.Work{Position: "P", Name: "N", StartDate: "2020", EndDate: "2021", Summary: long, Highlights: []string{long, long, long, long}}),
			Education: make([]resume.Education, 4),
			Skills: []resume.Skill{
				{Name: "a", Keywords: make([]string, 60)},
				{Name: "b"}, {Name: "c"}, {Name: "d"},
			},
			Projects: make([]resume.Project, 9),
		},
	}

	for name, doc := range docs {
		for _, keywords := range [][]string{nil, {"go"}, {"increased", "users", "missing"}} {
			result := Score(doc, keywords)
			for _, s := range result.SectionScores {
				assert.GreaterOrEqual(t, s.Score, 0, "%s/%s", name, s.Name)
				assert.LessOrEqual(t, s.Score, s.MaxScore, "%s/%s", name, s.Name)
			}
			assert.GreaterOrEqual(t, result.OverallScore, 0, name)
			assert.LessOrEqual(t, result.OverallScore, 100, name)
		}
	}
}

func TestScoreUnmatchedKeywordsLowerOverall(t *testing.T) {
	doc := resume.Example()

	without := Score(doc, nil)
	with := Score(doc, []string{"haskell", "erlang", "cobol"})

	require.Greater(t, without.OverallScore, 0)
	assert.Less(t, with.OverallScore, without.OverallScore)

	keywords := sectionByName(t, with, SectionKeywords)
	assert.Equal(t, 0, keywords.Score)
	assert.Equal(t, "Only matched 0 out of 3 job keywords", keywords.Feedback)
	assert.Equal(t, SuggestKeywords, with.Suggestions[0])

	// Keyword feedback stays on the section only.
	for _, s := range with.Suggestions {
		assert.NotContains(t, s, "job keywords")
	}
}

func TestScoreKeywordSectionPlacement(t *testing.T) {
	result := Score(resume.Example(), []string{"go"})

	require.Len(t, result.SectionScores, 7)
	assert.Equal(t, SectionKeywords, result.SectionScores[5].Name)
	assert.Equal(t, SectionFormatting, result.SectionScores[6].Name)
}

func TestScoreBlankKeywordsSkipSection(t *testing.T) {
	result := Score(resume.Example(), []string{"", "   "})

	_, ok := result.Section(SectionKeywords)
	assert.False(t, ok)
	assert.Equal(t, Score(resume.Example(), nil), result)
}

func TestResultJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Score(&resume.Document{}, []string{"go"}))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"overallScore", "sectionScores", "keywordMatches", "suggestions"} {
		assert.Contains(t, raw, key)
	}

	sections, ok := raw["sectionScores"].([]any)
	require.True(t, ok)
	first, ok := sections[0].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"name", "score", "maxScore", "feedback"} {
		assert.Contains(t, first, key)
	}
}

func TestReport(t *testing.T) {
	result := Score(resume.Example(), []string{"go", "docker"})

	var buf bytes.Buffer
	require.NoError(t, result.Report(&buf))

	out := buf.String()
	assert.Contains(t, out, "ATS score: ")
	assert.Contains(t, out, SectionWork)
	assert.Contains(t, out, "Keyword matches:")
	assert.Contains(t, out, "docker: 1")
}

func TestDumpToTmpFile(t *testing.T) {
	result := Score(resume.Example(), []string{"go"})

	name, err := result.DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(name) })

	data, err := os.ReadFile(name)
	require.NoError(t, err)

	var got Result
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, result.OverallScore, got.OverallScore)
	assert.Equal(t, result.KeywordMatches, got.KeywordMatches)
}

func TestRoundDiv(t *testing.T) {
	tests := []struct {
		n, d, want int
	}{
		{0, 5, 0},
		{1, 2, 1},
		{3, 2, 2},
		{10, 4, 3},
		{200, 90, 2},
		{7, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundDiv(tt.n, tt.d), "%d/%d", tt.n, tt.d)
	}
}

func repeatWork(n int, w resume.Work) []resume.Work {
	out := make([]resume.Work, n)
	for i := range out {
		out[i] = w
	}
	return out
}
