package cli

import "fmt"

// NotFoundError indicates that an ID typed by the user does not name a task
// in the current list.
type NotFoundError struct {
	Type string // "task"
	ID   string // the ID as displayed
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// UsageError indicates a malformed command line.
type UsageError struct {
	Command string // the command being run, if any
	Usage   string // expected form, or a description of the problem
}

func (e *UsageError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("usage: %s %s", e.Command, e.Usage)
	}
	return e.Usage
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
