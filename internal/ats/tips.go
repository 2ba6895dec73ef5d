package ats

// Tip is a general piece of advice for getting a resume past an ATS.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

var tips = []Tip{
	{"Use standard section headings", "Use clear section titles like 'Experience', 'Education', and 'Skills' that ATS systems can easily recognize."},
	{"Avoid complex formatting", "Tables, columns, headers, footers, and text boxes can confuse ATS systems. Stick to simple formatting."},
	{"Use standard fonts", "Stick with standard fonts like Arial, Calibri, or Times New Roman that parse correctly in ATS systems."},
	{"Include keywords from the job description", "Incorporate relevant keywords and phrases from the job posting to improve your match score."},
	{"Use standard date formats", "Use a consistent date format like MM/YYYY or Month YYYY throughout your resume."},
	{"Avoid images and graphics", "Most ATS systems cannot read images, logos, or graphics. Stick to text-based content."},
	{"Use standard file formats", "Submit your resume as a .docx or .pdf file unless otherwise specified in the job posting."},
	{"Avoid header and footer sections", "Some ATS systems may not properly scan content in headers and footers."},
	{"Use full acronym spellings", "Spell out acronyms at least once, followed by the abbreviation in parentheses."},
	{"Keep formatting consistent", "Use consistent formatting for similar elements like job titles, dates, and company names."},
}

// Tips returns a copy of the built-in tips in display order.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}
