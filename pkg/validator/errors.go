package validator

import "fmt"

// Violation represents a single input validation failure.
type Violation struct {
	Check   string // which check tripped (e.g. "source_mesh", "frame_range")
	Message string // operator-facing reason, shown verbatim
}

func (v *Violation) Error() string { return v.Message }

// AggregateError carries every violation found in one validation pass.
type AggregateError struct {
	Violations []*Violation
}

func (e *AggregateError) Error() string {
	if len(e.Violations) == 1 {
		return e.Violations[0].Message
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Violations))
	for i, v := range e.Violations {
		msg += fmt.Sprintf("  %d. %s\n", i+1, v.Message)
	}
	return msg
}

// Messages flattens the violations into the ordered string list the UI shows.
func (e *AggregateError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Message
	}
	return out
}
