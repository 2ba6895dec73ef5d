package keywords

import "strings"

var (
	techKeywords = []string{
		"JavaScript", "TypeScript", "React", "Node.js", "Python",
		"Java", "AWS", "Docker", "Kubernetes", "CI/CD",
	}
	softSkillKeywords = []string{
		"communication", "teamwork", "problem solving",
		"leadership", "time management", "adaptability",
	}
)

const (
	minExampleKeywords = 8
	maxExampleKeywords = 12
)

// DefaultExample is the keyword set used when no job is selected.
var DefaultExample = []string{
	"software development",
	"JavaScript",
	"React",
	"Node.js",
	"problem solving",
	"team collaboration",
	"agile methodology",
}

// ForJob guesses a plausible keyword set from a job name such as
// "resume_senior_data_engineer" or "Frontend Developer".
func ForJob(jobName string) []string {
	name := strings.ToLower(jobName)
	name = strings.TrimPrefix(name, "resume_")
	name = strings.ReplaceAll(name, "_", " ")

	var out []string
	if strings.Contains(name, "develop") {
		out = append(out, "software development", "coding", "debugging", "git")
		out = append(out, techKeywords[0:5]...)
	}
	if strings.Contains(name, "engineer") {
		out = append(out, "software engineering", "system design", "architecture")
		out = append(out, techKeywords[3:8]...)
	}
	if strings.Contains(name, "data") {
		out = append(out, "data analysis", "SQL", "Python", "data visualization", "statistics")
	}
	if strings.Contains(name, "design") {
		out = append(out, "UI/UX design", "wireframing", "prototyping", "user research", "Figma")
	}

	out = append(out, softSkillKeywords[0:4]...)

	if len(out) < minExampleKeywords {
		out = append(out, techKeywords[0:minExampleKeywords-len(out)]...)
	}

	if len(out) > maxExampleKeywords {
		out = out[:maxExampleKeywords]
	}
	return out
}
