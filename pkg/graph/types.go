package graph

import (
	"time"
)

// Default values applied to records that omit them, matching the
// memexia data model.
const (
	DefaultNodeType     = "concept"
	DefaultRelationType = "related"
	DefaultEdgeWeight   = 1.0
)

// Node is one vertex of the knowledge graph. Nodes are owned by the
// external data collaborator; the engine treats them as read-only input.
type Node struct {
	ID        string     `json:"id" yaml:"id" validate:"required"`
	Content   string     `json:"content" yaml:"content"`
	Type      string     `json:"type" yaml:"type"`
	CreatedAt time.Time  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Generated bool       `json:"generated,omitempty" yaml:"generated,omitempty"`
}

// Edge is a directed connection between two nodes. Weight is retained
// for future attraction scaling; the layout does not read it yet.
type Edge struct {
	ID           string  `json:"id" yaml:"id"`
	SourceID     string  `json:"source_id" yaml:"source_id" validate:"required"`
	TargetID     string  `json:"target_id" yaml:"target_id" validate:"required"`
	RelationType string  `json:"relation_type" yaml:"relation_type"`
	Weight       float64 `json:"weight" yaml:"weight" validate:"gte=0"`
}

// Normalize fills zero-valued optional fields with their defaults.
func (n *Node) Normalize() {
	if n.Type == "" {
		n.Type = DefaultNodeType
	}
}

// Normalize fills zero-valued optional fields with their defaults.
func (e *Edge) Normalize() {
	if e.RelationType == "" {
		e.RelationType = DefaultRelationType
	}
	if e.Weight == 0 {
		e.Weight = DefaultEdgeWeight
	}
}
