package inventory

import "fmt"

// Pipeline stages a LoadError can originate from.
const (
	StageFetch     = "fetch"
	StageDecode    = "decode"
	StageTransform = "transform"
)

// LoadError is the single failure type for the report pipeline. Any network,
// HTTP status, decode or transformation failure is surfaced as one of these
// and rendered as a single user-facing message.
type LoadError struct {
	Stage  string
	Status int // HTTP status for upstream status failures, 0 otherwise
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: unexpected upstream status %d", e.Stage, e.Status)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
