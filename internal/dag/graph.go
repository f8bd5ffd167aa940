// Package dag builds the directed practice dependency graph and provides
// cycle detection and adoption-stage computation over it.
package dag

import (
	"fmt"
	"sort"
)

// Node represents one practice in the dependency graph.
type Node struct {
	ID         string   // Practice identifier
	Label      string   // Optional display name
	Requires   []string // Ids of practices this one depends on
	RequiredBy []string // Ids of practices that depend on this one
	Depth      int      // Longest prerequisite chain length (determines stage)
}

// Vertex is the input form of a graph node.
type Vertex struct {
	ID    string
	Label string
}

// Edge is a directed dependency: From requires To.
type Edge struct {
	From string
	To   string
}

// Graph represents a directed graph of practice dependencies.
type Graph struct {
	nodes  map[string]*Node
	roots  []string // ids with no requirements (stage 1 candidates)
	stages []AdoptionStage
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		nodes:  make(map[string]*Node),
		roots:  []string{},
		stages: []AdoptionStage{},
	}
}

// Build constructs a dependency graph from vertices and edges. It rejects
// duplicate vertex ids and edges with unknown endpoints; callers enforce
// those invariants upstream (the uniqueness and reference rules) and
// pre-filter anything they choose to tolerate.
func Build(vertices []Vertex, edges []Edge) (*Graph, error) {
	g := New()

	for _, v := range vertices {
		if err := g.addVertex(v); err != nil {
			return nil, fmt.Errorf("building graph: %w", err)
		}
	}

	for _, e := range edges {
		if err := g.addEdge(e); err != nil {
			return nil, fmt.Errorf("building graph: %w", err)
		}
	}

	g.identifyRoots()
	return g, nil
}

func (g *Graph) addVertex(v Vertex) error {
	if _, exists := g.nodes[v.ID]; exists {
		return fmt.Errorf("duplicate practice id %s", v.ID)
	}
	g.nodes[v.ID] = &Node{
		ID:         v.ID,
		Label:      v.Label,
		Requires:   []string{},
		RequiredBy: []string{},
	}
	return nil
}

func (g *Graph) addEdge(e Edge) error {
	from, ok := g.nodes[e.From]
	if !ok {
		return fmt.Errorf("edge references unknown practice %s", e.From)
	}
	to, ok := g.nodes[e.To]
	if !ok {
		return fmt.Errorf("edge references unknown practice %s", e.To)
	}
	from.Requires = append(from.Requires, e.To)
	to.RequiredBy = append(to.RequiredBy, e.From)
	return nil
}

// identifyRoots finds all practices with no requirements.
func (g *Graph) identifyRoots() {
	g.roots = []string{}
	for id, node := range g.nodes {
		if len(node.Requires) == 0 {
			g.roots = append(g.roots, id)
		}
	}
	sort.Strings(g.roots)
}

// Nodes returns the map of graph nodes.
func (g *Graph) Nodes() map[string]*Node {
	return g.nodes
}

// Roots returns the sorted ids of practices with no requirements.
func (g *Graph) Roots() []string {
	return g.roots
}

// Stages returns the computed adoption stages.
func (g *Graph) Stages() []AdoptionStage {
	return g.stages
}

// GetNode returns a node by id, or nil if not found.
func (g *Graph) GetNode(id string) *Node {
	return g.nodes[id]
}

// Size returns the number of practices in the graph.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// Vertex visit states for cycle detection.
const (
	white = iota // not yet visited
	gray         // on the current traversal path
	black        // fully processed
)

// dfsFrame is one entry on the explicit traversal stack.
type dfsFrame struct {
	id   string
	next int // index of the next requirement to follow
}

// DetectCycle searches the graph for a dependency cycle. It returns one
// concrete cycle as an id sequence starting and ending at the same id, or
// nil if the graph is acyclic. The traversal is an iterative DFS with an
// explicit frame stack, so call-stack depth is independent of graph size.
// Start vertices are visited in sorted order for deterministic output.
func (g *Graph) DetectCycle() []string {
	state := make(map[string]int, len(g.nodes))

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, start := range ids {
		if state[start] != white {
			continue
		}
		if cycle := g.cycleFrom(start, state); cycle != nil {
			return cycle
		}
	}
	return nil
}

// cycleFrom runs one DFS rooted at start, coloring vertices gray while they
// are on the path and black once exhausted.
func (g *Graph) cycleFrom(start string, state map[string]int) []string {
	stack := []dfsFrame{{id: start}}
	path := []string{start}
	state[start] = gray

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		node := g.nodes[frame.id]

		if frame.next < len(node.Requires) {
			dep := node.Requires[frame.next]
			frame.next++

			switch state[dep] {
			case white:
				state[dep] = gray
				stack = append(stack, dfsFrame{id: dep})
				path = append(path, dep)
			case gray:
				// dep is on the current path: the cycle runs from its
				// first occurrence on the path back to itself.
				return closeCycle(path, dep)
			}
			continue
		}

		state[frame.id] = black
		stack = stack[:len(stack)-1]
		path = path[:len(path)-1]
	}
	return nil
}

// closeCycle extracts the cycle from the traversal path and closes it with
// the repeated id.
func closeCycle(path []string, start string) []string {
	for i, id := range path {
		if id == start {
			cycle := make([]string, 0, len(path)-i+1)
			cycle = append(cycle, path[i:]...)
			return append(cycle, start)
		}
	}
	// start is always on the path when its state is gray
	return append([]string{}, start, start)
}
