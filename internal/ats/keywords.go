package ats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/qerope/resume-ats/internal/resume"
)

// usableKeywords trims the keywords and drops empty ones, keeping order and
// duplicates.
func usableKeywords(keywords []string) []string {
	usable := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			usable = append(usable, k)
		}
	}
	return usable
}

func evaluateKeywords(doc *resume.Document, keywords []string) (SectionScore, map[string]int) {
	text := strings.ToLower(FullText(doc))
	matches := make(map[string]int)

	matched := 0
	for _, keyword := range keywords {
		occurrences := CountKeyword(text, keyword)
		if occurrences > 0 {
			matched++
			matches[keyword] = occurrences
		}
	}

	total := len(keywords)
	score := roundDiv(maxKeywords*matched, total)

	var feedback string
	switch {
	case matched*10 < total*5:
		feedback = fmt.Sprintf("Only matched %d out of %d job keywords", matched, total)
	case matched*10 < total*7:
		feedback = fmt.Sprintf("Matched %d out of %d job keywords", matched, total)
	default:
		feedback = fmt.Sprintf("Good keyword matching: %d out of %d job keywords", matched, total)
	}

	return newSection(SectionKeywords, score, maxKeywords, []string{feedback}), matches
}

// CountKeyword counts case-insensitive whole-term occurrences of keyword in
// text. Regex metacharacters in keyword are matched literally.
func CountKeyword(text, keyword string) int {
	pattern := keywordPattern(keyword)
	if pattern == nil {
		return 0
	}
	return len(pattern.FindAllStringIndex(text, -1))
}

// keywordPattern anchors the keyword on word boundaries. A boundary is only
// required on a side that ends in a word character, so terms like "c++" or
// ".net" can still match.
func keywordPattern(keyword string) *regexp.Regexp {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if isWordByte(keyword[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(keyword))
	if isWordByte(keyword[len(keyword)-1]) {
		sb.WriteString(`\b`)
	}

	return regexp.MustCompile(sb.String())
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

// FullText flattens the scored resume fields into a single space-joined
// string in a fixed order.
func FullText(doc *resume.Document) string {
	if doc == nil {
		return ""
	}

	parts := []string{doc.Basics.Name, doc.Basics.Label, doc.Basics.Summary}

	for _, job := range doc.Work {
		parts = append(parts, job.Position, job.Name, job.Summary)
		if job.Highlights != nil {
			parts = append(parts, strings.Join(job.Highlights, " "))
		}
	}

	for _, edu := range doc.Education {
		parts = append(parts, edu.Institution, edu.Area, edu.StudyType)
		if edu.Courses != nil {
			parts = append(parts, strings.Join(edu.Courses, " "))
		}
	}

	for _, skill := range doc.Skills {
		parts = append(parts, skill.Name)
		if skill.Keywords != nil {
			parts = append(parts, strings.Join(skill.Keywords, " "))
		}
	}

	for _, project := range doc.Projects {
		parts = append(parts, project.Name, project.Description)
		if project.Highlights != nil {
			parts = append(parts, strings.Join(project.Highlights, " "))
		}
	}

	return strings.Join(parts, " ")
}
