package geoloc

import (
	"fmt"
	"io"

	"github.com/tqwhitetech/geoloc/errors"
	"github.com/tqwhitetech/geoloc/internal/rules"
	"github.com/tqwhitetech/geoloc/pkg/xmltree"
)

// Checker validates instance fragments against the declared extension
// types. A Checker is immutable after construction and safe for
// concurrent use by multiple goroutines; Check is a pure function of
// its inputs.
type Checker struct {
	strict bool
}

// Option configures a Checker.
type Option interface{ apply(*checkerOptions) }

type checkerOptions struct {
	strict bool
}

type optionFunc func(*checkerOptions)

func (f optionFunc) apply(cfg *checkerOptions) {
	if cfg == nil {
		return
	}
	f(cfg)
}

// WithStrictDerivation enables the strict derivation-by-restriction
// reading: point children the restriction does not re-permit are
// reported as violations. The default is the lenient reading matching
// real-world GML consumers, which accept inherited base-type content.
func WithStrictDerivation() Option {
	return optionFunc(func(cfg *checkerOptions) {
		cfg.strict = true
	})
}

// NewChecker returns a Checker with the given options applied.
func NewChecker(opts ...Option) *Checker {
	var cfg checkerOptions
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&cfg)
		}
	}
	return &Checker{strict: cfg.strict}
}

// Check validates a parsed fragment against one extension type.
//
// Conformance violations never surface as the error return: they
// accumulate into the Verdict so the caller sees the complete defect
// list in one pass. The error is non-nil only for caller bugs
// (errors.ErrUnknownType) or input on which no partial validation is
// possible (errors.ErrMalformedInput for a nil fragment).
func (c *Checker) Check(fragment xmltree.Element, typeName TypeName) (Verdict, error) {
	if fragment == nil {
		return Verdict{}, fmt.Errorf("check: nil fragment: %w", errors.ErrMalformedInput)
	}

	var violations []errors.Violation
	switch typeName {
	case TypePointWGS84E3D:
		violations = rules.CheckPointWGS84E3D(fragment, c.strict)
	case TypeGEOLOCInstance:
		violations = rules.CheckGEOLOCInstance(fragment)
	default:
		return Verdict{}, fmt.Errorf("check %s: %w", typeName, errors.ErrUnknownType)
	}

	return Verdict{OK: len(violations) == 0, Violations: violations}, nil
}

// CheckReader parses a document and checks its root element. Parse
// failures wrap errors.ErrMalformedInput and abort the check.
func (c *Checker) CheckReader(r io.Reader, typeName TypeName) (Verdict, error) {
	if r == nil {
		return Verdict{}, fmt.Errorf("check: nil reader: %w", errors.ErrMalformedInput)
	}
	doc, err := xmltree.Parse(r)
	if err != nil {
		return Verdict{}, fmt.Errorf("check: %v: %w", err, errors.ErrMalformedInput)
	}
	return c.Check(doc.DocumentElement(), typeName)
}
