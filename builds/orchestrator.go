// File: orchestrator.go
// Role: Affected-unit planning and dependency-first rebuilds.
//
// Determinism:
//   - Affected()/Rebuild() order is the post-order of a DFS forest seeded in
//     store enumeration order: every dependency precedes its dependents.

package builds

import (
	"errors"
	"fmt"

	"github.com/antoine-coulon/dag-go/core"
)

// ErrGraphNil is returned when an Orchestrator was constructed without a
// graph.
var ErrGraphNil = errors.New("builds: graph is nil")

// BuildFunc rebuilds a single unit. It receives a snapshot copy of the
// vertex; returning an error aborts the rebuild run.
type BuildFunc func(core.Vertex) error

// Orchestrator tracks which units of a dependency graph have been built
// against which payload content, and plans rebuilds when content changes.
type Orchestrator struct {
	graph *core.Graph
	built map[string]string // unit id → fingerprint at last successful build
}

// New creates an Orchestrator over g. Nothing is considered built yet, so
// the first Affected call reports every unit.
func New(g *core.Graph) *Orchestrator {
	return &Orchestrator{
		graph: g,
		built: make(map[string]string),
	}
}

// Update merges new payload content into the unit with the given id — a
// source change arriving from the host. The underlying graph applies the
// usual shallow-merge semantics; a subsequent Affected reflects the change
// and its propagation to dependents.
func (o *Orchestrator) Update(id string, partial map[string]any) {
	if o.graph == nil {
		return
	}
	o.graph.MergePayload(id, partial)
}

// Affected returns the ids that must rebuild: units whose payload
// fingerprint differs from their last successful build (or that never
// built), plus every unit that transitively depends on one of those.
// The result is in dependency-first order.
func (o *Orchestrator) Affected() ([]string, error) {
	if o.graph == nil {
		return nil, ErrGraphNil
	}

	// 1) Snapshot enumeration order and adjacency; fingerprint each unit.
	order := o.graph.VertexIDs()
	adj := make(map[string][]string, len(order))
	changed := make(map[string]bool, len(order))
	for _, id := range order {
		adj[id] = o.graph.AdjacentToIDs(id)
		v, _ := o.graph.Vertex(id)
		fp, err := Fingerprint(v.Payload)
		if err != nil {
			return nil, fmt.Errorf("unit %q: %w", id, err)
		}
		changed[id] = fp != o.built[id]
	}

	// 2) Post-order over the dependency relation: dependencies first.
	post := postOrder(order, adj)

	// 3) Propagate: a unit is affected if its own content changed or any
	//    dependency is affected. Dependencies precede dependents in post,
	//    so one forward pass suffices.
	affected := make(map[string]bool, len(post))
	var out []string
	for _, id := range post {
		aff := changed[id]
		for _, dep := range adj[id] {
			if affected[dep] {
				aff = true
				break
			}
		}
		affected[id] = aff
		if aff {
			out = append(out, id)
		}
	}

	return out, nil
}

// Rebuild runs fn over every affected unit in dependency-first order,
// recording the fingerprint of each successful build so the unit is skipped
// until its content (or a dependency's) changes again. It returns the ids
// actually rebuilt; on a build failure it stops and returns the ids built so
// far along with the wrapped error, leaving the failed unit and its
// dependents dirty for the next run.
func (o *Orchestrator) Rebuild(fn BuildFunc) ([]string, error) {
	plan, err := o.Affected()
	if err != nil {
		return nil, err
	}

	var rebuilt []string
	for _, id := range plan {
		v, ok := o.graph.Vertex(id)
		if !ok {
			continue
		}
		if err = fn(v); err != nil {
			return rebuilt, fmt.Errorf("builds: rebuild %q: %w", id, err)
		}
		fp, ferr := Fingerprint(v.Payload)
		if ferr != nil {
			return rebuilt, fmt.Errorf("unit %q: %w", id, ferr)
		}
		o.built[id] = fp
		rebuilt = append(rebuilt, id)
	}

	return rebuilt, nil
}

// walkFrame is one level of the explicit post-order worklist.
type walkFrame struct {
	id   string
	next int
}

// postOrder walks the dependency forest rooted at each id of order, deepest
// dependency first, sharing the visited set across roots. For an acyclic
// graph the result places every id after all ids it points at.
func postOrder(order []string, adj map[string][]string) []string {
	visited := make(map[string]bool, len(order))
	out := make([]string, 0, len(order))

	for _, root := range order {
		if visited[root] {
			continue
		}
		visited[root] = true
		stack := []walkFrame{{id: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := adj[top.id]
			if top.next < len(deps) {
				n := deps[top.next]
				top.next++
				if !visited[n] {
					visited[n] = true
					stack = append(stack, walkFrame{id: n})
				}
				continue
			}
			out = append(out, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	return out
}
