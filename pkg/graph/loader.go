package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// File is the on-disk representation of a graph: the shape produced by
// the memexia backend's graph endpoint, plus an optional seed id.
type File struct {
	Nodes  []Node `json:"nodes" yaml:"nodes"`
	Edges  []Edge `json:"edges" yaml:"edges"`
	SeedID string `json:"seed_id,omitempty" yaml:"seed_id,omitempty"`
}

// Load reads a graph from a YAML or JSON file, chosen by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q", filepath.Ext(path))
	}
}

// ParseJSON parses a JSON graph document.
func ParseJSON(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse graph JSON: %w", err)
	}
	if err := f.normalizeAndValidate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseYAML parses a YAML graph document.
func ParseYAML(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse graph YAML: %w", err)
	}
	if err := f.normalizeAndValidate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) normalizeAndValidate() error {
	for i := range f.Nodes {
		f.Nodes[i].Normalize()
		if err := validate.Struct(&f.Nodes[i]); err != nil {
			return fmt.Errorf("node %d invalid: %w", i, err)
		}
	}
	for i := range f.Edges {
		f.Edges[i].Normalize()
		if err := validate.Struct(&f.Edges[i]); err != nil {
			return fmt.Errorf("edge %d invalid: %w", i, err)
		}
	}
	return nil
}

// Snapshot builds a layout-ready snapshot from the file contents.
// Edges referencing unknown node ids are dropped here, per the
// snapshot's retention rule.
func (f *File) Snapshot() *Snapshot {
	return NewSnapshot(f.Nodes, f.Edges, f.SeedID)
}
