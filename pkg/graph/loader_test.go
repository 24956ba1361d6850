package graph

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `
nodes:
  - id: n1
    content: memex
  - id: n2
    content: hypertext
    type: idea
edges:
  - source_id: n1
    target_id: n2
    relation_type: inspired
seed_id: n1
`

const sampleJSON = `{
  "nodes": [{"id": "n1", "content": "memex"}, {"id": "n2"}],
  "edges": [{"source_id": "n1", "target_id": "n2"}],
  "seed_id": "n1"
}`

func TestParseYAML(t *testing.T) {
	f, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}

	if len(f.Nodes) != 2 || len(f.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(f.Nodes), len(f.Edges))
	}
	if f.Nodes[0].Type != DefaultNodeType {
		t.Errorf("default node type not applied: %q", f.Nodes[0].Type)
	}
	if f.Nodes[1].Type != "idea" {
		t.Errorf("explicit node type overwritten: %q", f.Nodes[1].Type)
	}
	if f.Edges[0].Weight != DefaultEdgeWeight {
		t.Errorf("default weight not applied: %v", f.Edges[0].Weight)
	}

	snap := f.Snapshot()
	if snap.SeedID() != "n1" {
		t.Errorf("SeedID() = %q, want n1", snap.SeedID())
	}
}

func TestParseJSON(t *testing.T) {
	f, err := ParseJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("ParseJSON() error: %v", err)
	}
	if len(f.Nodes) != 2 || len(f.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges", len(f.Nodes), len(f.Edges))
	}
	if f.Edges[0].RelationType != DefaultRelationType {
		t.Errorf("relation type = %q, want %q", f.Edges[0].RelationType, DefaultRelationType)
	}
}

func TestParseRejectsMissingIDs(t *testing.T) {
	_, err := ParseJSON([]byte(`{"nodes": [{"content": "no id"}]}`))
	if err == nil {
		t.Fatal("expected validation error for node without id")
	}
	if !strings.Contains(err.Error(), "node 0") {
		t.Errorf("error should name the offending record: %v", err)
	}

	_, err = ParseJSON([]byte(`{"nodes": [{"id": "a"}], "edges": [{"source_id": "a"}]}`))
	if err == nil {
		t.Fatal("expected validation error for edge without target")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "graph.yaml")
	if err := os.WriteFile(yamlPath, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yamlPath); err != nil {
		t.Errorf("Load(yaml) error: %v", err)
	}

	jsonPath := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(jsonPath); err != nil {
		t.Errorf("Load(json) error: %v", err)
	}

	if _, err := Load(filepath.Join(dir, "graph.txt")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestGenerateReproducible(t *testing.T) {
	a := Generate(20, rand.New(rand.NewSource(7)))
	b := Generate(20, rand.New(rand.NewSource(7)))

	if len(a.Nodes) != 20 || len(b.Nodes) != 20 {
		t.Fatalf("got %d and %d nodes", len(a.Nodes), len(b.Nodes))
	}
	// IDs are fresh uuids every run, but the topology must match
	if len(a.Edges) != len(b.Edges) {
		t.Errorf("edge counts differ: %d vs %d", len(a.Edges), len(b.Edges))
	}

	snap := a.Snapshot()
	if snap.DroppedEdges() != 0 {
		t.Errorf("generated graph has %d dangling edges", snap.DroppedEdges())
	}
	if snap.SeedID() != a.Nodes[0].ID {
		t.Errorf("seed should be the root node")
	}
}
