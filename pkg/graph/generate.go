package graph

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generate builds a synthetic knowledge graph for demos and benchmarks:
// a random tree rooted at a seed node, plus a sprinkling of cross
// edges. The rng drives both the tree shape and the cross-edge choice;
// pass a fixed-seed source for reproducible graphs.
func Generate(n int, rng *rand.Rand) *File {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if n <= 0 {
		return &File{}
	}

	nodes := make([]Node, n)
	now := time.Now()
	for i := range nodes {
		nodes[i] = Node{
			ID:        uuid.NewString(),
			Content:   fmt.Sprintf("concept %d", i),
			Type:      DefaultNodeType,
			CreatedAt: now,
			Generated: i != 0 && rng.Intn(3) == 0,
		}
	}

	edges := make([]Edge, 0, n+n/4)
	for i := 1; i < n; i++ {
		parent := rng.Intn(i)
		edges = append(edges, Edge{
			ID:           uuid.NewString(),
			SourceID:     nodes[parent].ID,
			TargetID:     nodes[i].ID,
			RelationType: DefaultRelationType,
			Weight:       DefaultEdgeWeight,
		})
	}

	// Cross edges make the layout more interesting than a pure tree.
	for i := 0; i < n/4; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		edges = append(edges, Edge{
			ID:           uuid.NewString(),
			SourceID:     nodes[a].ID,
			TargetID:     nodes[b].ID,
			RelationType: "associated",
			Weight:       DefaultEdgeWeight,
		})
	}

	return &File{
		Nodes:  nodes,
		Edges:  edges,
		SeedID: nodes[0].ID,
	}
}
