package ats

import (
	"unicode/utf8"

	"github.com/qerope/resume-ats/internal/resume"
)

const (
	fullSummaryLength        = 100
	projectDescriptionLength = 30
	detailedProjectScore     = 4
	completeEducationScore   = 5
	wellStockedSkills        = 10
	wellOrganizedSkills      = 3
)

func evaluateBasics(basics *resume.Basics) SectionScore {
	score := 0
	var feedback []string

	if basics.Name != "" {
		score += 4
	} else {
		feedback = append(feedback, "Missing name")
	}

	if basics.Email != "" {
		score += 3
	} else {
		feedback = append(feedback, "Missing email")
	}

	if basics.Phone != "" {
		score += 3
	} else {
		feedback = append(feedback, "Missing phone number")
	}

	if loc := basics.Location; loc != nil && (loc.City != "" || loc.Region != "") {
		score += 2
	} else {
		feedback = append(feedback, "Missing location information")
	}

	switch {
	case utf8.RuneCountInString(basics.Summary) > fullSummaryLength:
		score += 5
	case basics.Summary != "":
		score += 3
		feedback = append(feedback, "Summary is too brief")
	default:
		feedback = append(feedback, "Missing professional summary")
	}

	if n := len(basics.Profiles); n > 0 {
		score += min(3, n)
	} else {
		feedback = append(feedback, "No professional online profiles included")
	}

	return newSection(SectionBasics, score, maxBasics, feedback)
}

func evaluateEducation(education []resume.Education) SectionScore {
	if len(education) == 0 {
		return newSection(SectionEducation, 0, maxEducation, []string{"No education listed"})
	}

	complete := 0
	for _, edu := range education {
		entry := countPresent(edu.Institution, edu.Area, edu.StudyType, edu.StartDate, edu.EndDate)
		entry += min(2, len(edu.Courses))
		if entry >= completeEducationScore {
			complete++
		}
	}

	score := 5 + min(10, complete*5)

	var feedback []string
	if complete < len(education) {
		feedback = append(feedback, "Some education entries are incomplete")
	}

	return newSection(SectionEducation, score, maxEducation, feedback)
}

func evaluateSkills(skills []resume.Skill) SectionScore {
	if len(skills) == 0 {
		return newSection(SectionSkills, 0, maxSkills, []string{"No skills listed"})
	}

	totalKeywords, categorized := 0, 0
	for _, skill := range skills {
		if skill.Name != "" {
			categorized++
		}
		totalKeywords += len(skill.Keywords)
	}

	score := 5 + min(10, roundDiv(totalKeywords, 2)) + min(5, categorized*2)

	var feedback []string
	if totalKeywords < wellStockedSkills {
		feedback = append(feedback, "Consider adding more skills")
	}
	if categorized < wellOrganizedSkills {
		feedback = append(feedback, "Organize skills into more categories")
	}

	return newSection(SectionSkills, score, maxSkills, feedback)
}

func evaluateProjects(projects []resume.Project) SectionScore {
	if len(projects) == 0 {
		return newSection(SectionProjects, 0, maxProjects, []string{"No projects listed"})
	}

	detailed := 0
	for _, project := range projects {
		entry := 0
		if project.Name != "" {
			entry++
		}
		if utf8.RuneCountInString(project.Description) > projectDescriptionLength {
			entry += 2
		}
		if len(project.Highlights) > 0 {
			entry += 2
		}
		if project.URL != "" {
			entry++
		}
		if entry >= detailedProjectScore {
			detailed++
		}
	}

	score := 3 + min(7, detailed*2)

	var feedback []string
	if detailed < len(projects) {
		feedback = append(feedback, "Some projects lack detail")
	}

	return newSection(SectionProjects, score, maxProjects, feedback)
}

func countPresent(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}
