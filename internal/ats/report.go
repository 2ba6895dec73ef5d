package ats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// SortedMatches returns the matched keywords ordered by name.
func (r *Result) SortedMatches() []string {
	keys := make([]string, 0, len(r.KeywordMatches))
	for k := range r.KeywordMatches {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Report writes a plain-text summary of the result.
func (r *Result) Report(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "ATS score: %d%%\n\n", r.OverallScore); err != nil {
		return err
	}

	if err := r.ReportSections(w); err != nil {
		return err
	}

	if len(r.KeywordMatches) > 0 {
		if err := r.ReportMatches(w); err != nil {
			return err
		}
	}

	if len(r.Suggestions) > 0 {
		if _, err := fmt.Fprintln(w, "\nSuggestions:"); err != nil {
			return err
		}
		for _, s := range r.Suggestions {
			if _, err := fmt.Fprintf(w, "  - %s\n", s); err != nil {
				return err
			}
		}
	}

	return nil
}

// ReportSections writes one aligned line per section.
func (r *Result) ReportSections(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range r.SectionScores {
		if _, err := fmt.Fprintf(tw, "%s\t%d/%d\t%s\n", s.Name, s.Score, s.MaxScore, s.Feedback); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// ReportMatches writes the matched keywords with their counts.
func (r *Result) ReportMatches(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\nKeyword matches:"); err != nil {
		return err
	}
	for _, k := range r.SortedMatches() {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", k, r.KeywordMatches[k]); err != nil {
			return err
		}
	}
	return nil
}

// DumpToTmpFile writes the result as indented JSON to a new temporary file
// and returns its name.
func (r *Result) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "ats_result_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
