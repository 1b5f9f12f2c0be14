// File: file.go
// Role: whole-document edge loading: TOML and YAML parsers plus the
//       extension-dispatching LoadFile.

package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// edgeDoc is the shared shape of TOML and YAML edge documents.
//
// TOML:
//
//	[[edge]]
//	a = "Kyiv"
//	b = "Lviv"
//	weight = 540
//
// YAML:
//
//	edges:
//	  - a: Kyiv
//	    b: Lviv
//	    weight: 540
type edgeDoc struct {
	Edges []edgeEntry `toml:"edge" yaml:"edges"`
}

type edgeEntry struct {
	A      string `toml:"a" yaml:"a"`
	B      string `toml:"b" yaml:"b"`
	Weight int64  `toml:"weight" yaml:"weight"`
}

// ParseTOML decodes a TOML edge document into triples.
func ParseTOML(data []byte) ([]Triple, error) {
	var doc edgeDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ingest: decode toml: %w", err)
	}

	return doc.triples()
}

// ParseYAML decodes a YAML edge document into triples.
func ParseYAML(data []byte) ([]Triple, error) {
	var doc edgeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ingest: decode yaml: %w", err)
	}

	return doc.triples()
}

// triples validates the decoded entries. Structural problems (missing
// names, negative weights) fail the whole document: unlike interactive
// input, a file is authored once and should be fixed at the source.
func (d edgeDoc) triples() ([]Triple, error) {
	out := make([]Triple, 0, len(d.Edges))
	for i, e := range d.Edges {
		if e.A == "" || e.B == "" {
			return nil, fmt.Errorf("%w: edge %d is missing a node name", ErrMalformedLine, i)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d weight=%d", ErrBadWeight, i, e.Weight)
		}
		out = append(out, Triple{A: e.A, B: e.B, Weight: e.Weight})
	}

	return out, nil
}

// LoadFile reads an edge document, dispatching on the file extension:
// ".toml" → TOML, ".yaml"/".yml" → YAML.
func LoadFile(path string) ([]Triple, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
