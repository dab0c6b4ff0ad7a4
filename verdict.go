package geoloc

import "github.com/tqwhitetech/geoloc/errors"

// Verdict is the result of a conformance check: a pass/fail flag plus
// every violation found in one pass, in deterministic order (attribute
// checks before child-structure checks, then document order).
type Verdict struct {
	OK         bool
	Violations []errors.Violation
}

// Err returns nil for a passing verdict, or the violations as an error.
func (v Verdict) Err() error {
	if v.OK {
		return nil
	}
	return errors.ViolationList(v.Violations)
}
