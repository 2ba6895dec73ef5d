package posting

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const noiseSelector = "nav, footer, header, script, style, noscript, form, svg, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// JobPostingSelectors are tried in order to locate the posting body.
var JobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractMainText parses HTML and returns the text of the job posting body,
// falling back to the whole body when no known container matches.
func ExtractMainText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var main *goquery.Selection
	for _, selector := range JobPostingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			main = selection.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements are separated by newlines so list items do not run together.
	main.Find("p, li, h1, h2, h3, h4, h5, h6, br, div, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(main.Text()), nil
}

// cleanWhitespace trims every line, collapses inner runs of spaces and drops
// empty lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
