// Package ats scores resumes with a rule-based model of an applicant
// tracking system.
//
// Every evaluator is a pure function of the resume snapshot with a fixed
// point budget. Score runs them in a fixed order and normalizes the sum by
// the budgets that actually ran, so the keyword section only counts when
// keywords are supplied.
package ats

import (
	"strings"

	"github.com/qerope/resume-ats/internal/resume"
)

const (
	SectionBasics     = "Contact Information & Summary"
	SectionWork       = "Work Experience"
	SectionEducation  = "Education"
	SectionSkills     = "Skills"
	SectionProjects   = "Projects"
	SectionKeywords   = "Keyword Matching"
	SectionFormatting = "Formatting & Structure"
)

const (
	maxBasics     = 20
	maxWork       = 25
	maxEducation  = 15
	maxSkills     = 20
	maxProjects   = 10
	maxKeywords   = 20
	maxFormatting = 10
)

const (
	SuggestKeywords = "Consider adding more job-specific keywords to improve ATS matching."
	SuggestContact  = "Complete all contact information in the basics section."
	SuggestWork     = "Add more details to your work experience, including measurable achievements."
	SuggestSkills   = "Expand your skills section with relevant technical and soft skills."
)

const feedbackSeparator = ". "

// SectionScore is the outcome of a single evaluator.
type SectionScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
	Feedback string `json:"feedback"`
}

// below reports whether the score is under percent of the budget.
func (s SectionScore) below(percent int) bool {
	return s.Score*100 < s.MaxScore*percent
}

// Result is the composite ATS score of a resume.
type Result struct {
	OverallScore   int            `json:"overallScore"`
	SectionScores  []SectionScore `json:"sectionScores"`
	KeywordMatches map[string]int `json:"keywordMatches"`
	Suggestions    []string       `json:"suggestions"`
}

// Section returns the section with the given name.
func (r *Result) Section(name string) (SectionScore, bool) {
	for _, s := range r.SectionScores {
		if s.Name == name {
			return s, true
		}
	}
	return SectionScore{}, false
}

// Score evaluates doc against the optional job keywords.
// A nil document is scored as an empty resume.
func Score(doc *resume.Document, keywords []string) *Result {
	if doc == nil {
		doc = &resume.Document{}
	}

	result := &Result{
		SectionScores:  make([]SectionScore, 0, 7),
		KeywordMatches: map[string]int{},
		Suggestions:    []string{},
	}

	basics := evaluateBasics(&doc.Basics)
	work := evaluateWork(doc.Work)
	education := evaluateEducation(doc.Education)
	skills := evaluateSkills(doc.Skills)
	projects := evaluateProjects(doc.Projects)

	result.SectionScores = append(result.SectionScores, basics, work, education, skills, projects)

	var keywordSection *SectionScore
	if usable := usableKeywords(keywords); len(usable) > 0 {
		section, matches := evaluateKeywords(doc, usable)
		keywordSection = &section
		result.SectionScores = append(result.SectionScores, section)
		result.KeywordMatches = matches
	}

	result.SectionScores = append(result.SectionScores, evaluateFormatting(doc))

	total, totalMax := 0, 0
	for _, s := range result.SectionScores {
		total += s.Score
		totalMax += s.MaxScore
	}
	if totalMax > 0 {
		result.OverallScore = roundDiv(100*total, totalMax)
	}

	if keywordSection != nil && keywordSection.below(70) {
		result.Suggestions = append(result.Suggestions, SuggestKeywords)
	}
	if basics.Score < basics.MaxScore {
		result.Suggestions = append(result.Suggestions, SuggestContact)
	}
	if work.below(70) {
		result.Suggestions = append(result.Suggestions, SuggestWork)
	}
	if skills.below(80) {
		result.Suggestions = append(result.Suggestions, SuggestSkills)
	}

	return result
}

func newSection(name string, score, maxScore int, feedback []string) SectionScore {
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return SectionScore{
		Name:     name,
		Score:    score,
		MaxScore: maxScore,
		Feedback: strings.Join(feedback, feedbackSeparator),
	}
}

// roundDiv returns n/d rounded half up for non-negative n and positive d.
func roundDiv(n, d int) int {
	if d <= 0 || n <= 0 {
		return 0
	}
	return (2*n + d) / (2 * d)
}
