package cli

import "fmt"

// ValidationError indicates a gig or import payload failed validation.
// The collection is left unchanged when one of these is returned.
type ValidationError struct {
	Field   string // the field that failed validation, if any
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError indicates no gig with the given ID exists. Delete and
// update treat this as a soft condition, not a hard failure.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("gig %s not found", e.ID)
}

// StorageWriteError wraps a failed durable-slot write. The in-memory
// collection is still updated when this occurs; only durability for
// the session is degraded.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("could not write %s: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error {
	return e.Err
}

// FormatError returns a user-friendly error message prefixed with
// "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
