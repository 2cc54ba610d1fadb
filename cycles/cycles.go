// Package cycles: bounded elementary-cycle enumeration.
//
// FindCycles searches from every vertex as a potential cycle origin using an
// explicit frame stack, so arbitrarily long paths never grow the call stack.
// Rotational duplicates discovered from different origins collapse through a
// canonical minimal-rotation signature.

package cycles

import (
	"github.com/antoine-coulon/dag-go/core"
)

// frame is one level of the explicit DFS worklist: the vertex it sits on and
// the index of the next outgoing edge to explore.
type frame struct {
	id   string
	next int
}

// FindCycles inspects graph g for all distinct elementary cycles, honoring
// the optional depth bound.
//
// Returns ErrGraphNil for a nil graph and ErrNegativeMaxDepth for a
// malformed bound; otherwise the Result lists each cycle exactly once (see
// Result.Cycles for the canonical form and ordering).
//
// The graph must not be mutated while FindCycles runs.
// Complexity: O(V·(V+E)) worst case, plus O(L) canonicalization per
// discovered rotation.
func FindCycles(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Apply options and validate the bound.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.MaxDepth < Unbounded {
		return nil, ErrNegativeMaxDepth
	}

	res := &Result{}

	// 3) MaxDepth = 0 disables detection regardless of graph shape.
	if o.MaxDepth == 0 {
		return res, nil
	}

	// 4) Snapshot the adjacency relation once: ids in store enumeration
	//    order, resolved outgoing ids per vertex in edge-insertion order.
	order := g.VertexIDs()
	adj := make(map[string][]string, len(order))
	for _, id := range order {
		adj[id] = g.AdjacentToIDs(id)
	}

	// 5) Seed one bounded DFS per origin; dedup across origins via the
	//    canonical signature set.
	seen := make(map[string]struct{})
	for _, origin := range order {
		searchFrom(origin, adj, o.MaxDepth, seen, res)
	}

	// 6) HasCycles mirrors the deduplicated list.
	res.HasCycles = len(res.Cycles) > 0

	return res, nil
}

// searchFrom runs a single depth-first search rooted at origin, recording
// every returning path within the depth bound as a cycle candidate.
//
// Invariants maintained per iteration:
//   - path[i] == frames[i].id for all i (the current elementary path);
//   - onPath is the membership set of path;
//   - len(path) is the number of edges a closing step back to origin
//     would complete.
func searchFrom(
	origin string,
	adj map[string][]string,
	maxDepth int,
	seen map[string]struct{},
	res *Result,
) {
	frames := []frame{{id: origin}}
	path := []string{origin}
	onPath := map[string]struct{}{origin: {}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]
		neighbors := adj[top.id]

		// Exhausted this level: backtrack.
		if top.next >= len(neighbors) {
			delete(onPath, top.id)
			frames = frames[:len(frames)-1]
			path = path[:len(path)-1]
			continue
		}

		n := neighbors[top.next]
		top.next++

		// Returning path: the closing edge completes a cycle of
		// len(path) edges. Report it iff it fits the bound.
		if n == origin {
			if maxDepth == Unbounded || len(path) <= maxDepth {
				record(path, seen, res)
			}
			continue
		}

		// A vertex already on the path (other than the origin) marks an
		// overlapping cycle reachable from its own origin: prune.
		if _, ok := onPath[n]; ok {
			continue
		}

		// Extending would leave no edge budget for a returning path.
		if maxDepth != Unbounded && len(path) >= maxDepth {
			continue
		}

		frames = append(frames, frame{id: n})
		path = append(path, n)
		onPath[n] = struct{}{}
	}
}

// record canonicalizes the cycle described by path (origin first, closing
// edge implicit) and appends it to the result unless a rotation of it was
// already reported.
func record(path []string, seen map[string]struct{}, res *Result) {
	canon := minimalRotation(path)
	sig := joinSignature(canon)
	if _, dup := seen[sig]; dup {
		return
	}
	seen[sig] = struct{}{}
	res.Cycles = append(res.Cycles, canon)
}
