package ats

import (
	"regexp"

	"github.com/qerope/resume-ats/internal/resume"
)

// Date shapes recognized by the formatting checker.
const (
	DateFullISO   = "YYYY-MM-DD"
	DateYearMonth = "YYYY-MM"
	DateYear      = "YYYY"
	DateMonthName = "MMM YYYY"
	DateOther     = "other"
)

var dateShapes = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{DateFullISO, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)},
	{DateYearMonth, regexp.MustCompile(`^\d{4}-\d{2}$`)},
	{DateYear, regexp.MustCompile(`^\d{4}$`)},
	{DateMonthName, regexp.MustCompile(`^[A-Za-z]{3} \d{4}$`)},
}

// DateShape classifies a date string into one of the known shapes.
func DateShape(date string) string {
	for _, shape := range dateShapes {
		if shape.pattern.MatchString(date) {
			return shape.name
		}
	}
	return DateOther
}

func evaluateFormatting(doc *resume.Document) SectionScore {
	score := 0
	var feedback []string

	shapes := make(map[string]struct{})
	dates := 0
	collect := func(values ...string) {
		for _, v := range values {
			if v == "" {
				continue
			}
			shapes[DateShape(v)] = struct{}{}
			dates++
		}
	}

	for _, job := range doc.Work {
		collect(job.StartDate, job.EndDate)
	}
	for _, edu := range doc.Education {
		collect(edu.StartDate, edu.EndDate)
	}

	if dates > 0 {
		if len(shapes) == 1 {
			score += 5
		} else {
			score += max(0, 5-len(shapes))
			feedback = append(feedback, "Inconsistent date formats detected")
		}
	}

	if doc.HasStandardSections() {
		score += 5
	} else {
		score += 2
		feedback = append(feedback, "Missing standard resume sections")
	}

	return newSection(SectionFormatting, score, maxFormatting, feedback)
}
