package results

import "errors"

var (
	// ErrDocumentRequired blocks an analysis action triggered without an
	// uploaded resume. No external call is made.
	ErrDocumentRequired = errors.New("resume document is required")

	// ErrJobDescriptionRequired blocks match/improve actions triggered
	// without the free-text job description.
	ErrJobDescriptionRequired = errors.New("job description is required")

	// ErrUnknownMode rejects an analysis mode outside the fixed set.
	ErrUnknownMode = errors.New("unknown analysis mode")

	// ErrAnalysisFailed marks a failed external generation call.
	ErrAnalysisFailed = errors.New("analysis failed")

	// ErrStorageUnavailable marks a persistence failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
