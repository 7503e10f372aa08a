package manifest

import (
	"encoding/json"
	"errors"
	"fmt"

	"jestpath/internal/probe"
)

// FileName is the npm package manifest file name
const FileName = "package.json"

// ErrNoDependencies is returned by HasDependency when the manifest declares no dependency map
var ErrNoDependencies = errors.New("manifest has no dependencies map")

// Manifest is the subset of package.json that path resolution reads.
// Fields of an unexpected type are left empty rather than failing the read.
type Manifest struct {
	Name    string
	Version string

	// Dependencies is nil when the field is absent or is not an object.
	// Values are kept raw so an odd version spec cannot break the lookup.
	Dependencies map[string]json.RawMessage
}

type rawManifest struct {
	Name         json.RawMessage `json:"name"`
	Version      json.RawMessage `json:"version"`
	Dependencies json.RawMessage `json:"dependencies"`
}

// Read loads and parses the manifest at path. Only an unreadable file or a
// document that is not a JSON object is an error.
func Read(p probe.Probe, path string) (*Manifest, error) {
	data, err := p.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawManifest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	m := &Manifest{
		Name:    decodeString(raw.Name),
		Version: decodeString(raw.Version),
	}
	if len(raw.Dependencies) > 0 {
		var deps map[string]json.RawMessage
		if err := json.Unmarshal(raw.Dependencies, &deps); err == nil {
			m.Dependencies = deps
		}
	}
	return m, nil
}

// HasDependency reports whether any of names is declared in the dependency map.
// It returns ErrNoDependencies when there is no map to consult.
func (m *Manifest) HasDependency(names ...string) (bool, error) {
	if m.Dependencies == nil {
		return false, ErrNoDependencies
	}
	for _, name := range names {
		if _, ok := m.Dependencies[name]; ok {
			return true, nil
		}
	}
	return false, nil
}

func decodeString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
