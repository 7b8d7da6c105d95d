package router

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch is returned when no route matches a path.
	ErrNoMatch = errors.New("no route matches path")

	// ErrNoHistory is returned by New when Options.History is nil.
	ErrNoHistory = errors.New("router requires a history")
)

// ValidationKind categorizes route table problems.
type ValidationKind string

const (
	KindEmptyPath     ValidationKind = "EMPTY_PATH"
	KindRelativePath  ValidationKind = "RELATIVE_PATH"
	KindNilComponent  ValidationKind = "NIL_COMPONENT"
	KindBadParam      ValidationKind = "BAD_PARAM"
	KindDuplicatePath ValidationKind = "DUPLICATE_PATH"
)

// ValidationError describes one invalid route.
type ValidationError struct {
	Kind ValidationKind

	// Index is the route's position in the table.
	Index int

	Path    string
	Message string
	Details string
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: route %d", e.Kind, e.Index)
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	msg += ": " + e.Message
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// MultiValidationError collects every problem found in a route table.
type MultiValidationError struct {
	Errors []ValidationError
}

func (e *MultiValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d route validation errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *MultiValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, err := range e.Errors {
		errs[i] = err
	}
	return errs
}

// Has reports whether any collected error is of kind k.
func (e *MultiValidationError) Has(k ValidationKind) bool {
	for _, err := range e.Errors {
		if err.Kind == k {
			return true
		}
	}
	return false
}
