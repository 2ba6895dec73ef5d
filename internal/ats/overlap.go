package ats

import (
	"strings"

	"github.com/qerope/resume-ats/internal/resume"
)

// Overlap is a quick comparison of job keywords against listed skills.
type Overlap struct {
	Count      int `json:"count"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// SkillsOverlap counts the job keywords that share a substring with any
// skill keyword, in either direction. Unlike Score it looks only at the
// skills section and does not require whole-word matches.
func SkillsOverlap(doc *resume.Document, keywords []string) Overlap {
	job := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			job = append(job, k)
		}
	}

	var listed []string
	if doc != nil {
		for _, skill := range doc.Skills {
			for _, k := range skill.Keywords {
				if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
					listed = append(listed, k)
				}
			}
		}
	}

	count := 0
	for _, k := range job {
		for _, s := range listed {
			if strings.Contains(s, k) || strings.Contains(k, s) {
				count++
				break
			}
		}
	}

	return Overlap{
		Count:      count,
		Total:      len(job),
		Percentage: roundDiv(100*count, len(job)),
	}
}
