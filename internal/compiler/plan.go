package compiler

import (
	"fmt"
	"strings"
)

// Plan lists the preset ids of each compilation level, parents first.
type Plan struct {
	Levels [][]string
}

// NewPlan copies the levels out of a graph.
func NewPlan(g *Graph) (*Plan, error) {
	if g == nil {
		return nil, fmt.Errorf("graph cannot be nil")
	}

	levels := make([][]string, 0, len(g.Levels))
	for _, ids := range g.Levels {
		levels = append(levels, append([]string(nil), ids...))
	}
	return &Plan{Levels: levels}, nil
}

// String renders one line per level.
func (p *Plan) String() string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	for i, level := range p.Levels {
		fmt.Fprintf(&b, "Level %d (%d presets): %s\n", i, len(level), strings.Join(level, ", "))
	}
	return b.String()
}
