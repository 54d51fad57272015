package compiler

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/slate/internal/sheet"
	slateerrors "github.com/alexisbeaulieu97/slate/pkg/errors"
)

// node is one preset in the inheritance graph. Parents must compile before
// their children.
type node struct {
	id       string
	preset   *sheet.Preset
	parents  []*node
	children []*node
}

// Graph is the extends graph of a stylesheet grouped into levels. Every
// preset in a level depends only on presets of earlier levels.
type Graph struct {
	nodes  map[string]*node
	Levels [][]string
}

// BuildGraph links every preset to the presets it extends and sorts the
// result into levels.
func BuildGraph(presets []sheet.Preset) (*Graph, error) {
	g := &Graph{nodes: make(map[string]*node, len(presets))}

	for i := range presets {
		preset := &presets[i]
		if _, exists := g.nodes[preset.ID]; exists {
			return nil, slateerrors.NewValidationError("presets", fmt.Sprintf("duplicate preset id %q", preset.ID), nil)
		}
		g.nodes[preset.ID] = &node{id: preset.ID, preset: preset}
	}

	for i := range presets {
		child := g.nodes[presets[i].ID]
		for _, parentID := range presets[i].Extends {
			parent, ok := g.nodes[parentID]
			if !ok {
				return nil, slateerrors.NewValidationError("presets", fmt.Sprintf("preset %q extends unknown preset %q", child.id, parentID), nil)
			}
			parent.children = append(parent.children, child)
			child.parents = append(child.parents, parent)
		}
	}

	if err := g.sort(); err != nil {
		return nil, err
	}
	return g, nil
}

// sort computes the levels with Kahn's algorithm.
func (g *Graph) sort() error {
	indegree := make(map[string]int, len(g.nodes))
	var queue []string
	for id, n := range g.nodes {
		indegree[id] = len(n.parents)
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	processed := 0
	var levels [][]string
	for len(queue) > 0 {
		sort.Strings(queue)
		levels = append(levels, queue)

		var next []string
		for _, id := range queue {
			processed++
			for _, child := range g.nodes[id].children {
				indegree[child.id]--
				if indegree[child.id] == 0 {
					next = append(next, child.id)
				}
			}
		}
		queue = next
	}

	if processed != len(g.nodes) {
		return slateerrors.NewValidationError("presets", "extends cycle detected while sorting presets", nil)
	}

	g.Levels = levels
	return nil
}

// Len reports the number of presets in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}
