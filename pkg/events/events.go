// Package events carries the engine's outbound event stream: node
// selection and clearing, published to whichever presenter is attached
// (detail popup, logging, tests).
package events

import (
	"github.com/memexia/graphview/pkg/graph"
)

// Topics published by the engine.
const (
	// TopicSelection carries NodeSelected and SelectionCleared payloads.
	TopicSelection = "selection"
	// TopicGraph carries GraphReplaced payloads on live data updates.
	TopicGraph = "graph"
)

// NodeSelected is emitted when a pointer pick resolves to a node.
// Screen coordinates are those of the triggering pointer event, so a
// presenter can anchor a popup next to the click.
type NodeSelected struct {
	Node    graph.Node
	ScreenX int
	ScreenY int
}

// SelectionCleared is emitted on a background click or explicit
// dismissal.
type SelectionCleared struct{}

// GraphReplaced is emitted after a live data update has been laid out
// and installed in the scene.
type GraphReplaced struct {
	Nodes        int
	Edges        int
	DroppedEdges int
}
