package graph

// Snapshot is an immutable view of the node/edge set for one rendering
// pass. Edges whose source or target id is absent from the node set are
// dropped at construction, not reported as errors.
//
// Snapshot identity is pointer identity: the engine recomputes layout
// and rebuilds the scene whenever it is handed a new Snapshot, without
// deep-diffing against the previous one.
type Snapshot struct {
	nodes   []Node
	edges   []Edge
	seedID  string
	index   map[string]int
	dropped int
}

// NewSnapshot builds a snapshot from raw node and edge sets. The input
// slices are copied; callers may reuse them afterwards. Duplicate node
// ids keep the first occurrence.
func NewSnapshot(nodes []Node, edges []Edge, seedID string) *Snapshot {
	s := &Snapshot{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}

	for _, n := range nodes {
		if _, exists := s.index[n.ID]; exists {
			continue
		}
		s.index[n.ID] = len(s.nodes)
		s.nodes = append(s.nodes, n)
	}

	s.edges = make([]Edge, 0, len(edges))
	for _, e := range edges {
		_, srcOK := s.index[e.SourceID]
		_, dstOK := s.index[e.TargetID]
		if !srcOK || !dstOK {
			s.dropped++
			continue
		}
		s.edges = append(s.edges, e)
	}

	if _, ok := s.index[seedID]; ok {
		s.seedID = seedID
	}

	return s
}

// NodeCount returns the number of nodes in the snapshot.
func (s *Snapshot) NodeCount() int {
	return len(s.nodes)
}

// EdgeCount returns the number of retained edges.
func (s *Snapshot) EdgeCount() int {
	return len(s.edges)
}

// DroppedEdges returns how many edges referenced an absent node id and
// were excluded.
func (s *Snapshot) DroppedEdges() int {
	return s.dropped
}

// Nodes returns the nodes in stable order. The returned slice must not
// be mutated.
func (s *Snapshot) Nodes() []Node {
	return s.nodes
}

// Edges returns the retained edges. The returned slice must not be
// mutated.
func (s *Snapshot) Edges() []Edge {
	return s.edges
}

// NodeByID looks a node up by id.
func (s *Snapshot) NodeByID(id string) (Node, bool) {
	i, ok := s.index[id]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// IndexOf returns the stable index of a node id. The index is the
// vertex index used by the scene's point primitive.
func (s *Snapshot) IndexOf(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// NodeAt returns the node at a stable index.
func (s *Snapshot) NodeAt(i int) Node {
	return s.nodes[i]
}

// SeedID returns the seed node id, or "" when the snapshot has none.
// A seed id that does not resolve to a node is treated as absent.
func (s *Snapshot) SeedID() string {
	return s.seedID
}

// IsSeed reports whether the given node id is the snapshot's seed.
func (s *Snapshot) IsSeed(id string) bool {
	return s.seedID != "" && id == s.seedID
}
