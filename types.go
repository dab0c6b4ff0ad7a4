// Package geoloc checks XML instance fragments for conformance to the
// two extension types of the GSIP geospatial position-interchange
// extension profile: a 3D point geometry restricted to WGS84
// ellipsoidal height, and a location-instance extension. The two type
// shapes are a closed, hard-coded set; no schema is loaded at runtime.
package geoloc

import (
	"fmt"

	"github.com/tqwhitetech/geoloc/errors"
	"github.com/tqwhitetech/geoloc/internal/rules"
)

// Namespaces and fixed literals of the extension profile.
const (
	// GMLNamespace is the base geometry namespace the profile extends.
	GMLNamespace = "http://www.opengis.net/gml/3.2"
	// ExtensionNamespace is the namespace of the extension types.
	ExtensionNamespace = "http://metadata.ces.mil/mdr/ns/GSIP/geoloc"
	// CRSWGS84E3D is the single permitted srsName value.
	CRSWGS84E3D = rules.CRSWGS84E3D
)

// TypeName identifies one of the declared extension types.
type TypeName int

const (
	// TypeUnknown is the zero value; Check rejects it.
	TypeUnknown TypeName = iota
	// TypePointWGS84E3D is the restricted 3D point geometry
	// (PointType_WGS84E_3D).
	TypePointWGS84E3D
	// TypeGEOLOCInstance is the location-instance extension
	// (GEOLOCInstanceType).
	TypeGEOLOCInstance
)

// String returns the XSD type name.
func (t TypeName) String() string {
	switch t {
	case TypePointWGS84E3D:
		return "PointType_WGS84E_3D"
	case TypeGEOLOCInstance:
		return "GEOLOCInstanceType"
	default:
		return fmt.Sprintf("TypeName(%d)", int(t))
	}
}

// ParseTypeName resolves a type name from its XSD name or its CLI
// spelling. Unrecognized names return errors.ErrUnknownType.
func ParseTypeName(s string) (TypeName, error) {
	switch s {
	case "PointType_WGS84E_3D", "Point_WGS84E_3D", "point-wgs84e-3d":
		return TypePointWGS84E3D, nil
	case "GEOLOCInstanceType", "GEOLOCInstance", "geoloc-instance":
		return TypeGEOLOCInstance, nil
	default:
		return TypeUnknown, fmt.Errorf("parse type name %q: %w", s, errors.ErrUnknownType)
	}
}
