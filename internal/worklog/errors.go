package worklog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedShape is returned by Append for values that are neither a
// Pair nor a Triple.
var ErrUnsupportedShape = errors.New("unsupported entry shape")

// ErrNegativeDuration is returned by Append for a Pair whose end precedes its start.
var ErrNegativeDuration = errors.New("entry ends before it starts")

// RowError is a failure to turn one form row into an entry.
type RowError struct {
	// Index is the zero-based position of the row in the input.
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index+1, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// RowErrors collects every row that failed during a recompute.
type RowErrors struct {
	Errors []*RowError
}

func (e *RowErrors) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, re := range e.Errors {
		msgs = append(msgs, re.Error())
	}
	return fmt.Sprintf("%d rows have errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual row errors to errors.Is and errors.As.
func (e *RowErrors) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, re := range e.Errors {
		errs[i] = re
	}
	return errs
}
