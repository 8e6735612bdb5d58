package llm

import _ "embed"

var (
	//go:embed prompts/summary.txt
	promptSummary string
	//go:embed prompts/match.txt
	promptMatch string
	//go:embed prompts/improve.txt
	promptImprove string
)

// Template returns the fixed instructional text for a mode. Templates
// are static configuration and are not editable at runtime.
func Template(mode Mode) string {
	switch mode {
	case ModeATSMatch:
		return promptMatch
	case ModeSkillImprovement:
		return promptImprove
	default:
		return promptSummary
	}
}
