package editor

import "fmt"

// ValidationError reports a draft field that blocks the commit
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
