// Package scene holds a handful of scripted setups the demo CLI can load by
// name, each built from the same actor/physics construction API a caller
// uses: NewBody, NewWorld, AddBody.
package scene

import (
	"sort"

	"github.com/BAVDE1/2d-physics/actor"
	physics "github.com/BAVDE1/2d-physics"
	"github.com/BAVDE1/2d-physics/vec2"
)

// ScreenWidth and ScreenHeight describe the demo's world space, the same
// coordinate space the TUI renderer maps onto its character grid.
const (
	ScreenWidth  = 200.0
	ScreenHeight = 200.0
)

// DefaultOutOfBounds reports whether b has drifted more than one screen-size
// past the left, right, or bottom edge of the demo's world space. The top
// edge is not checked, matching a body that's been launched upward staying
// alive rather than being swept as soon as it leaves the screen.
func DefaultOutOfBounds(b *actor.Body) bool {
	pos := b.Transform.Pos
	below := pos.Y > ScreenHeight*2
	left := pos.X < -ScreenWidth
	right := pos.X > ScreenWidth*2
	return below || left || right
}

// Builder populates a freshly constructed World.
type Builder func(w *physics.World)

// Registry maps a scene name to its Builder.
var Registry = map[string]Builder{
	"drop":    buildDrop,
	"collide": buildCollide,
	"stack":   buildStack,
	"ramp":    buildRamp,
}

// Names returns the registered scene names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustMaterial(density, restitution, staticFriction, dynamicFriction float64) actor.Material {
	m, err := actor.NewMaterial(density, restitution, staticFriction, dynamicFriction)
	if err != nil {
		panic(err) // scene construction is scripted and local; a bad literal is a programmer error
	}
	return m
}

func mustCircle(radius float64) *actor.Circle {
	c, err := actor.NewCircle(radius)
	if err != nil {
		panic(err)
	}
	return c
}

func mustBox(hx, hy float64) *actor.Polygon {
	p, err := actor.NewBoxPolygon(hx, hy)
	if err != nil {
		panic(err)
	}
	return p
}

// buildDrop is S2: a circle falling under gravity onto a static slab.
func buildDrop(w *physics.World) {
	floor := actor.NewBody(vec2.V{X: 50, Y: 160}, 0, mustBox(100, 5), actor.Material{}, true, 0)
	ball := actor.NewBody(vec2.V{X: 60, Y: 20}, 0, mustCircle(5),
		mustMaterial(1, 0.3, 0.4, 0.2), false, 0)
	w.AddBody(floor)
	w.AddBody(ball)
}

// buildCollide is an S1-style setup: two dynamic circles approaching
// head-on, started farther apart and faster than the S1 scenario.
func buildCollide(w *physics.World) {
	mat := mustMaterial(1, 0.2, 0.3, 0.2)
	a := actor.NewBody(vec2.V{X: 0, Y: 0}, 0, mustCircle(5), mat, false, 0)
	b := actor.NewBody(vec2.V{X: 90, Y: 0}, 0, mustCircle(5), mat, false, 0)
	a.LinVel = vec2.V{X: 40, Y: 0}
	b.LinVel = vec2.V{X: -40, Y: 0}
	w.AddBody(a)
	w.AddBody(b)
}

// buildStack drops a handful of circles above one another onto a floor,
// exercising the resolver's iterative contact stability (§8 invariant 4).
func buildStack(w *physics.World) {
	floor := actor.NewBody(vec2.V{X: 100, Y: 220}, 0, mustBox(150, 5), actor.Material{}, true, 0)
	w.AddBody(floor)

	mat := mustMaterial(1, 0.1, 0.5, 0.3)
	for i := 0; i < 5; i++ {
		y := 200 - float64(i)*11
		ball := actor.NewBody(vec2.V{X: 100, Y: y}, 0, mustCircle(5), mat, false, 0)
		w.AddBody(ball)
	}
}

// buildRamp rests a triangular polygon on a flat static floor (S4),
// exercising polygon-polygon SAT and angular-velocity damping at rest.
func buildRamp(w *physics.World) {
	floor := actor.NewBody(vec2.V{X: 100, Y: 150}, 0, mustBox(150, 10), actor.Material{}, true, 0)
	w.AddBody(floor)

	tri, err := actor.NewPolygon([]vec2.V{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}})
	if err != nil {
		panic(err)
	}
	wedge := actor.NewBody(vec2.V{X: 100, Y: 100}, 0, tri, mustMaterial(1, 0, 0.4, 0.3), false, 0)
	w.AddBody(wedge)
}
