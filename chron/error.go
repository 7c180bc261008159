package chron

import (
	"errors"
	"fmt"
)

// ErrParse is the sentinel all parse errors unwrap to, so callers can
// test errors.Is(err, chron.ErrParse) without inspecting the concrete
// kind.
var ErrParse = errors.New("parse cron expression")

// FieldCountError reports an expression with the wrong number of
// whitespace-separated fields for the chosen entry point.
type FieldCountError struct {
	Expected string
	Got      int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("invalid field count: expected %s, got %d", e.Expected, e.Got)
}

func (e *FieldCountError) Unwrap() error { return ErrParse }

// FieldError reports a token that could not be parsed as an integer,
// range, or step expression.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s field %q: %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrParse }

// RangeError reports a single value or explicit range endpoint outside
// the field's domain.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d out of range (%d-%d)", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrParse }

// StepError reports a step modifier of zero.
type StepError struct {
	Field string
	Step  int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("invalid step %d for %s field", e.Step, e.Field)
}

func (e *StepError) Unwrap() error { return ErrParse }
