package layout

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestLayoutInvariants uses property-based testing to verify layout
// invariants that must hold for any node/edge set.
func TestLayoutInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	// Property 1: every node ends with a finite position, whatever the
	// edge wiring looks like (including self loops and duplicates)
	properties.Property("all positions finite", prop.ForAll(
		func(n int, pairs []int, seed int64) bool {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("n%d", i)
			}
			var edges [][2]string
			for i := 0; i+1 < len(pairs); i += 2 {
				edges = append(edges, [2]string{
					ids[pairs[i]%n],
					ids[pairs[i+1]%n],
				})
			}
			snap := makeSnapshot(ids, edges)

			fd := NewForceDirected(Config{Iterations: 10}, rand.New(rand.NewSource(seed)))
			positions := fd.Compute(snap)

			if len(positions) != n {
				return false
			}
			for _, p := range positions {
				if !finite(p) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 40),
		gen.SliceOf(gen.IntRange(0, 1000)),
		gen.Int64(),
	))

	// Property 2: a fixed seed makes layout a pure function of its input
	properties.Property("seeded layout is deterministic", prop.ForAll(
		func(n int, seed int64) bool {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("n%d", i)
			}
			var edges [][2]string
			for i := 1; i < n; i++ {
				edges = append(edges, [2]string{ids[i-1], ids[i]})
			}

			run := func() map[string]struct{ x, y, z float64 } {
				fd := NewForceDirected(Config{Iterations: 10}, rand.New(rand.NewSource(seed)))
				out := make(map[string]struct{ x, y, z float64 })
				for id, p := range fd.Compute(makeSnapshot(ids, edges)) {
					out[id] = struct{ x, y, z float64 }{p.X, p.Y, p.Z}
				}
				return out
			}

			first, second := run(), run()
			for id, p := range first {
				if second[id] != p {
					return false
				}
			}
			return true
		},
		gen.IntRange(2, 25),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
