package llm

import (
	"context"
	"fmt"
)

// Part is one text block of a generation request. Requests are ordered
// sequences of parts; the provider receives them exactly as assembled.
type Part struct {
	Text string `json:"text"`
}

// Client abstracts the text-generation provider. Implementations make
// exactly one attempt per call; callers surface failures to the user
// instead of retrying.
type Client interface {
	Generate(ctx context.Context, parts []Part) (string, error)
}

// Error is a failure reported by the provider itself (auth, quota,
// service-side errors), as opposed to transport failures.
type Error struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *Error) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("generation failed: %s (%s)", e.Message, e.Status)
	}
	return fmt.Sprintf("generation failed: %s", e.Message)
}
