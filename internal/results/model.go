package results

import "time"

// Analysis type tags. Every stored record carries exactly one of these.
const (
	TypeResumeSummary    = "Resume Summary"
	TypeSkillImprovement = "Skill Improvement"
	TypeATSMatch         = "ATS Match"
)

// Record is one persisted outcome of a single analysis action. Records
// are immutable once created; the only mutation is bulk deletion.
type Record struct {
	ID             string    `json:"id"`
	JobDescription string    `json:"jobDescription"`
	ResumeFilename string    `json:"resumeFilename"`
	AnalysisType   string    `json:"analysisType"`
	Result         string    `json:"result"`
	CreatedAt      time.Time `json:"createdAt"`
}
