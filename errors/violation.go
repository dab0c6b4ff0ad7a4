package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a conformance violation class.
type Code string

const (
	// CodeFixedValueMismatch indicates a fixed attribute value was absent or wrong.
	CodeFixedValueMismatch Code = "geoloc-fixed-value"
	// CodeExclusiveChoiceViolated indicates zero or multiple members of an
	// exclusive choice were present.
	CodeExclusiveChoiceViolated Code = "geoloc-exclusive-choice"
	// CodeCardinalityViolated indicates an optional property occurred more
	// than once.
	CodeCardinalityViolated Code = "geoloc-cardinality"
	// CodeUnexpectedContent indicates content not re-permitted by the
	// restriction, reported only under strict derivation checking.
	CodeUnexpectedContent Code = "geoloc-unexpected-content"
)

// ErrUnknownType reports a type name outside the closed variant set.
// It signals a caller bug, not a data defect.
var ErrUnknownType = errors.New("unknown extension type")

// ErrMalformedInput reports input on which no meaningful partial
// validation is possible (nil fragment, XML parse failure).
var ErrMalformedInput = errors.New("malformed input")

// Violation describes a single conformance defect with its code and
// optional instance path and actual/expected context.
type Violation struct {
	Code     Code
	Message  string
	Path     string
	Actual   string
	Expected []string
}

// ViolationList is an error that wraps one or more violations.
type ViolationList []Violation

// Error returns a compact summary of the violations.
func (v ViolationList) Error() string {
	switch len(v) {
	case 0:
		return "no violations"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the violation for display, including code, message, and context.
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.Actual != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", v.Actual))
	}
	return b.String()
}

// NewViolation builds a Violation with a code, message, and optional path.
func NewViolation(code Code, msg, path string) Violation {
	return Violation{Code: code, Message: msg, Path: path}
}

// NewViolationf formats a message and builds a Violation.
func NewViolationf(code Code, path, format string, args ...any) Violation {
	return NewViolation(code, fmt.Sprintf(format, args...), path)
}

// AsViolations extracts violations from an error returned by check helpers.
func AsViolations(err error) ([]Violation, bool) {
	list, ok := asViolationList(err)
	if !ok {
		return nil, false
	}
	return []Violation(list), true
}

func asViolationList(err error) (ViolationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ViolationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
