package utils

import "strings"

// TruncateForLog returns a single-line preview of s for log fields. Runs of
// whitespace, including the line breaks of job postings and model responses,
// collapse to one space before s is cut to limit runes and given an ellipsis.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
