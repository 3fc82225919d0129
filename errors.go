package searchwire

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldMissing signals a structurally required request field that was
// never set. Check individual validation failures with errors.Is.
var ErrFieldMissing = errors.New("required field missing")

// ValidationError collects every problem found while validating a request,
// so the caller can report them all at once instead of fixing one field per
// round trip. A nil *ValidationError means the request is valid.
type ValidationError struct {
	Failures []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the collected failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Failures
}

// AddValidationError appends a failure to ve, allocating the collection on
// first use. The returned value replaces ve.
func AddValidationError(err error, ve *ValidationError) *ValidationError {
	if ve == nil {
		ve = &ValidationError{}
	}
	ve.Failures = append(ve.Failures, err)
	return ve
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrFieldMissing, name)
}
