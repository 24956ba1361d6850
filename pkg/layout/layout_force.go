package layout

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/memexia/graphview/pkg/graph"
)

// ForceDirected implements force-directed graph layout in 3D. Each
// iteration accumulates pairwise repulsion and per-edge attraction,
// then perturbs positions directly; there is no velocity, mass, or
// cooling schedule.
type ForceDirected struct {
	config Config
	rng    *rand.Rand
}

// NewForceDirected creates a force-directed layout. A nil rng falls
// back to a time-seeded source; tests inject a fixed seed for
// deterministic output.
func NewForceDirected(config Config, rng *rand.Rand) *ForceDirected {
	config.applyDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ForceDirected{config: config, rng: rng}
}

// Compute lays the snapshot out from scratch.
func (fd *ForceDirected) Compute(snap *graph.Snapshot) map[string]r3.Vec {
	return fd.ComputeWarm(snap, nil)
}

// ComputeWarm lays the snapshot out, seeding nodes that appear in prev
// with their previous position so surviving nodes do not visibly
// relocate on a live update. Nodes absent from prev start on the
// placement shell.
func (fd *ForceDirected) ComputeWarm(snap *graph.Snapshot, prev map[string]r3.Vec) map[string]r3.Vec {
	nodes := snap.Nodes()
	n := len(nodes)
	if n == 0 {
		return make(map[string]r3.Vec)
	}
	if n == 1 {
		return map[string]r3.Vec{nodes[0].ID: {}}
	}

	pos := make([]r3.Vec, n)
	for i, node := range nodes {
		if p, ok := prev[node.ID]; ok && finite(p) {
			pos[i] = p
			continue
		}
		pos[i] = r3.Add(
			SpherePoint(i, n, fd.config.Radius),
			r3.Scale(fd.config.Jitter, fd.randomUnit()),
		)
	}

	// Edge endpoints resolved once; the snapshot has already dropped
	// edges with unresolvable ids.
	type pair struct{ a, b int }
	springs := make([]pair, 0, snap.EdgeCount())
	for _, e := range snap.Edges() {
		a, _ := snap.IndexOf(e.SourceID)
		b, _ := snap.IndexOf(e.TargetID)
		if a == b {
			continue
		}
		springs = append(springs, pair{a, b})
	}

	forces := make([]r3.Vec, n)
	for iter := 0; iter < fd.config.Iterations; iter++ {
		for i := range forces {
			forces[i] = r3.Vec{}
		}

		// Repulsion between all unordered pairs
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				diff := r3.Sub(pos[i], pos[j])
				dist := r3.Norm(diff)
				if dist == 0 {
					// Coincident points have no direction; separate
					// them along a fixed axis.
					diff = r3.Vec{X: 1}
					dist = 1
				}
				if dist < 1 {
					dist = 1
				}
				push := r3.Scale(fd.config.Repulsion/(dist*dist), r3.Unit(diff))
				forces[i] = r3.Add(forces[i], push)
				forces[j] = r3.Sub(forces[j], push)
			}
		}

		// Attraction along every retained edge: a spring with no rest
		// length, force proportional to distance.
		for _, s := range springs {
			diff := r3.Sub(pos[s.a], pos[s.b])
			pull := r3.Scale(fd.config.Attraction, diff)
			forces[s.a] = r3.Sub(forces[s.a], pull)
			forces[s.b] = r3.Add(forces[s.b], pull)
		}

		for i := range pos {
			pos[i] = r3.Add(pos[i], forces[i])
		}
	}

	out := make(map[string]r3.Vec, n)
	for i, node := range nodes {
		p := pos[i]
		if !finite(p) {
			// Non-finite positions would poison every projection
			// downstream; fall back to the placement shell.
			p = SpherePoint(i, n, fd.config.Radius)
		}
		out[node.ID] = p
	}
	return out
}

func (fd *ForceDirected) randomUnit() r3.Vec {
	for {
		v := r3.Vec{
			X: fd.rng.NormFloat64(),
			Y: fd.rng.NormFloat64(),
			Z: fd.rng.NormFloat64(),
		}
		if n := r3.Norm(v); n > 1e-9 {
			return r3.Scale(1/n, v)
		}
	}
}

func finite(v r3.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
