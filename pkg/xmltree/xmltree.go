// Package xmltree provides the minimal namespace-aware DOM consumed by
// the conformance checker: node name and namespace, attribute mapping,
// ordered child sequence, and text content.
package xmltree

// Common XML namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

// Document exposes the root element of a parsed fragment.
type Document interface {
	DocumentElement() Element
}

// Element is the minimal element view used by conformance checking.
type Element interface {
	NamespaceURI() string
	LocalName() string
	GetAttribute(name string) string
	GetAttributeNS(ns, local string) string
	HasAttribute(name string) bool
	HasAttributeNS(ns, local string) bool
	Attributes() []Attr // Attributes returns attributes in document order.
	Children() []Element
	Parent() Element // Parent returns the parent element; nil for the root.
	TextContent() string
}

// Attr exposes attribute name, namespace, and value.
type Attr interface {
	Name() string
	NamespaceURI() string
	LocalName() string
	Value() string
}
