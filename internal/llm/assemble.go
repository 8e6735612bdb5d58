package llm

import "ats-screener-backend/internal/extract"

// Assemble builds the ordered request payload for one analysis:
// the job description first when non-empty, then one part per page in
// page order, then the mode's template. The provider depends on this
// exact ordering.
func Assemble(jobDescription string, pages []extract.PageText, mode Mode) []Part {
	parts := make([]Part, 0, len(pages)+2)
	if jobDescription != "" {
		parts = append(parts, Part{Text: jobDescription})
	}
	for _, page := range pages {
		parts = append(parts, Part{Text: page.Text})
	}
	parts = append(parts, Part{Text: Template(mode)})
	return parts
}
