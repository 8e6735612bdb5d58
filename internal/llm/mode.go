package llm

// Mode selects which of the three fixed analysis behaviors is requested.
type Mode string

const (
	ModeSummary          Mode = "summary"
	ModeSkillImprovement Mode = "improve"
	ModeATSMatch         Mode = "match"
)

// ParseMode maps a request parameter to a Mode.
func ParseMode(raw string) (Mode, bool) {
	switch Mode(raw) {
	case ModeSummary, ModeSkillImprovement, ModeATSMatch:
		return Mode(raw), true
	default:
		return "", false
	}
}

// Label returns the categorical tag stored with a result.
func (m Mode) Label() string {
	switch m {
	case ModeSummary:
		return "Resume Summary"
	case ModeSkillImprovement:
		return "Skill Improvement"
	case ModeATSMatch:
		return "ATS Match"
	default:
		return ""
	}
}

// RequiresJobDescription reports whether the mode needs the free-text
// job description before any external call is made.
func (m Mode) RequiresJobDescription() bool {
	return m == ModeSkillImprovement || m == ModeATSMatch
}
