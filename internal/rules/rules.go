// Package rules implements the per-type constraint checks of the GSIP
// position-interchange extension profile. Checks accumulate violations
// in a single pass and never short-circuit: attribute checks run before
// child-structure checks, and child violations follow document order.
package rules

import (
	"github.com/tqwhitetech/geoloc/errors"
	"github.com/tqwhitetech/geoloc/pkg/xmltree"
)

// Fixed literals of the extension profile.
const (
	// SRSNameAttribute is the coordinate-reference-system attribute.
	SRSNameAttribute = "srsName"
	// CRSWGS84E3D is the single permitted srsName value: WGS84
	// ellipsoidal 3D (latitude, longitude, ellipsoidal height).
	CRSWGS84E3D = "http://metadata.ces.mil/mdr/ns/GSIP/crs/WGS84E_3D"

	// PosElement and CoordinatesElement are the two members of the
	// exclusive coordinate-representation choice.
	PosElement         = "pos"
	CoordinatesElement = "coordinates"

	// RemarksElement is the optional free-text property added by the
	// location-instance extension.
	RemarksElement = "remarks"
)

// inheritedStructural lists the base geometry properties carried over
// unchanged by the restriction. They pass without further checks.
var inheritedStructural = map[string]bool{
	"identifier":  true,
	"name":        true,
	"description": true,
}

// optionalGroups lists the resolution/accuracy metadata members and the
// human-readable presentation variants. Each may occur at most once; the
// schema defines no numeric bounds, so values are not range-checked.
var optionalGroups = map[string]bool{
	"horizontalResolution": true,
	"verticalResolution":   true,
	"horizontalAccuracy":   true,
	"verticalAccuracy":     true,

	"sexagesimalPresentation": true,
	"gridMetrePresentation":   true,
	"zoneMetrePresentation":   true,
	"quadranglePresentation":  true,
	"numericBitPresentation":  true,
}

// CheckPointWGS84E3D checks a fragment against the restricted 3D point
// geometry. In strict mode, children the restriction does not re-permit
// are violations; the default lenient mode accepts them, matching how
// real-world GML consumers process derivation by restriction.
func CheckPointWGS84E3D(el xmltree.Element, strict bool) []errors.Violation {
	var violations []errors.Violation
	base := el.LocalName()

	violations = append(violations, checkFixedSRSName(el, base)...)

	coordCount := 0
	choiceReported := false
	groupCounts := make(map[string]int)

	for _, child := range el.Children() {
		name := child.LocalName()
		switch {
		case name == PosElement || name == CoordinatesElement:
			coordCount++
			if coordCount > 1 && !choiceReported {
				violations = append(violations, errors.Violation{
					Code:     errors.CodeExclusiveChoiceViolated,
					Message:  "multiple coordinate representations present",
					Path:     base + "/" + name,
					Expected: []string{PosElement, CoordinatesElement},
				})
				choiceReported = true
			}
		case inheritedStructural[name]:
			// Inherited unchanged from the abstract geometry lineage.
		case optionalGroups[name]:
			groupCounts[name]++
			if groupCounts[name] == 2 {
				violations = append(violations, errors.NewViolationf(
					errors.CodeCardinalityViolated,
					base+"/"+name,
					"optional property %s occurs more than once", name))
			}
		default:
			if strict {
				violations = append(violations, errors.Violation{
					Code:    errors.CodeUnexpectedContent,
					Message: "content not re-permitted by the restriction",
					Path:    base + "/" + name,
					Actual:  name,
				})
			}
		}
	}

	if coordCount == 0 {
		violations = append(violations, errors.Violation{
			Code:     errors.CodeExclusiveChoiceViolated,
			Message:  "no coordinate representation present",
			Path:     base,
			Expected: []string{PosElement, CoordinatesElement},
		})
	}

	return violations
}

// CheckGEOLOCInstance checks a fragment against the location-instance
// extension. The type is intentionally open: the only rule is the
// cardinality of the added property, and content inherited from the
// base is never rejected.
func CheckGEOLOCInstance(el xmltree.Element) []errors.Violation {
	var violations []errors.Violation
	base := el.LocalName()

	remarks := 0
	for _, child := range el.Children() {
		if child.LocalName() != RemarksElement {
			continue
		}
		remarks++
		if remarks == 2 {
			violations = append(violations, errors.NewViolationf(
				errors.CodeCardinalityViolated,
				base+"/"+RemarksElement,
				"optional property %s occurs more than once", RemarksElement))
		}
	}

	return violations
}

func checkFixedSRSName(el xmltree.Element, base string) []errors.Violation {
	path := base + "/@" + SRSNameAttribute
	if !el.HasAttribute(SRSNameAttribute) {
		return []errors.Violation{{
			Code:     errors.CodeFixedValueMismatch,
			Message:  "required attribute srsName missing",
			Path:     path,
			Expected: []string{CRSWGS84E3D},
		}}
	}
	if got := el.GetAttribute(SRSNameAttribute); got != CRSWGS84E3D {
		return []errors.Violation{{
			Code:     errors.CodeFixedValueMismatch,
			Message:  "srsName does not match the fixed coordinate reference system",
			Path:     path,
			Actual:   got,
			Expected: []string{CRSWGS84E3D},
		}}
	}
	return nil
}
