package actor

import "sort"

// Group is an insertion-ordered, layer-sorted accessor surface for
// renderers: bodies are appended as added and can be iterated back-to-front
// by layer. The solver never reads a Group; it exists purely for the
// external-interface glue collaborators consume.
type Group struct {
	bodies []*Body
}

// Add appends a body to the group.
func (g *Group) Add(b *Body) {
	g.bodies = append(g.bodies, b)
}

// Remove drops the first occurrence of b from the group, if present.
func (g *Group) Remove(b *Body) {
	for i, existing := range g.bodies {
		if existing == b {
			g.bodies = append(g.bodies[:i], g.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the group's bodies in insertion order.
func (g *Group) Bodies() []*Body {
	return g.bodies
}

// SortedByLayer returns a copy of the group's bodies ordered by ascending
// Layer, stable within a layer so draw order among same-layer bodies matches
// insertion order.
func (g *Group) SortedByLayer() []*Body {
	sorted := make([]*Body, len(g.bodies))
	copy(sorted, g.bodies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Layer < sorted[j].Layer
	})
	return sorted
}
