// Package manifest loads the YAML batch manifest consumed by the CLI:
// a list of documents, each with the extension type it claims to
// conform to. Unknown type names are load-time errors so a batch run
// never starts against a half-valid manifest.
package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	geoloc "github.com/tqwhitetech/geoloc"
)

// Entry is one document to check.
type Entry struct {
	Path string
	Type geoloc.TypeName
}

// Manifest is a parsed batch manifest.
type Manifest struct {
	Documents []Entry
}

type rawManifest struct {
	Documents []rawEntry `yaml:"documents"`
}

type rawEntry struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
}

// Load parses and validates a manifest.
func Load(r io.Reader) (*Manifest, error) {
	var raw rawManifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(raw.Documents) == 0 {
		return nil, fmt.Errorf("parse manifest: no documents listed")
	}

	m := &Manifest{Documents: make([]Entry, 0, len(raw.Documents))}
	for i, doc := range raw.Documents {
		if doc.Path == "" {
			return nil, fmt.Errorf("parse manifest: documents[%d]: path is required", i)
		}
		typeName, err := geoloc.ParseTypeName(doc.Type)
		if err != nil {
			return nil, fmt.Errorf("parse manifest: documents[%d] (%s): %w", i, doc.Path, err)
		}
		m.Documents = append(m.Documents, Entry{Path: doc.Path, Type: typeName})
	}
	return m, nil
}

// LoadFile loads a manifest from disk.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}
