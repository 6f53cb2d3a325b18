package scoring

import "fmt"

// ValidationError reports clinically invalid input. Score functions return
// it instead of producing a distorted score, and callers can distinguish it
// from downstream persistence failures with errors.As.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}
