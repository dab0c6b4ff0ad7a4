package geoloc

// Abstract base elements of the parent standard that the extension
// profile declares substitutions for.
const (
	// AbstractGeometryElement is the abstract geometry variation point.
	AbstractGeometryElement = "AbstractGeometry"
	// AbstractLocationInstanceElement is the abstract location-instance
	// variation point.
	AbstractLocationInstanceElement = "AbstractLocationInstance"
)

// substitutions maps each abstract base element to the closed set of
// concrete extension types permitted to stand in for it.
var substitutions = map[string][]TypeName{
	AbstractGeometryElement:         {TypePointWGS84E3D},
	AbstractLocationInstanceElement: {TypeGEOLOCInstance},
}

// SubstitutableTypes returns the extension types that may fill the
// given abstract base element, or nil if the base is not a declared
// variation point.
func SubstitutableTypes(base string) []TypeName {
	types, ok := substitutions[base]
	if !ok {
		return nil
	}
	out := make([]TypeName, len(types))
	copy(out, types)
	return out
}

// CanSubstitute reports whether the extension type may fill the given
// abstract base element.
func CanSubstitute(base string, typeName TypeName) bool {
	for _, t := range substitutions[base] {
		if t == typeName {
			return true
		}
	}
	return false
}
