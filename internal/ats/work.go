package ats

import (
	"regexp"
	"unicode/utf8"

	"github.com/qerope/resume-ats/internal/resume"
)

const (
	workSummaryLength   = 50
	detailedWorkScore   = 7
	wantedActionVerbs   = 3
	wantedMetricBullets = 2
)

var (
	actionVerbPattern = regexp.MustCompile(`(?i)^(Developed|Created|Managed|Led|Implemented|Designed|Improved|Increased|Reduced|Achieved)`)
	metricsPattern    = regexp.MustCompile(`(?i)\d+%|\d+ percent|\$\d+|\d+ million|\d+ thousand|\d+ users`)
)

// evaluateWork caps the partial sums (10+5+5+10) at the section budget of 25.
func evaluateWork(work []resume.Work) SectionScore {
	if len(work) == 0 {
		return newSection(SectionWork, 0, maxWork, []string{"No work experience listed"})
	}

	detailed, actionVerbs, metrics := 0, 0, 0
	for _, job := range work {
		entry := countPresent(job.Position, job.Name, job.StartDate, job.EndDate)
		if utf8.RuneCountInString(job.Summary) > workSummaryLength {
			entry++
		}
		entry += min(3, len(job.Highlights))

		for _, highlight := range job.Highlights {
			if actionVerbPattern.MatchString(highlight) {
				actionVerbs++
			}
			if metricsPattern.MatchString(highlight) {
				metrics++
			}
		}

		if entry >= detailedWorkScore {
			detailed++
		}
	}

	score := min(10, len(work)*2) +
		min(5, detailed*2) +
		min(5, actionVerbs) +
		min(10, metrics*2)

	var feedback []string
	if detailed < len(work) {
		feedback = append(feedback, "Some work entries lack detail")
	}
	if actionVerbs < wantedActionVerbs {
		feedback = append(feedback, "Use more action verbs to start achievement bullets")
	}
	if metrics < wantedMetricBullets {
		feedback = append(feedback, "Include more measurable achievements with metrics")
	}

	return newSection(SectionWork, score, maxWork, feedback)
}
