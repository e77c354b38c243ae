package actor

import (
	"fmt"
	"math"

	"github.com/BAVDE1/2d-physics/vec2"
)

// ShapeKind tags which arm of the shape variant a body carries. Dispatch on
// shape pairs is a 2x2 type switch on the concrete shape types, not virtual
// method calls — see constraint.Manifold.Generate.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
)

func (k ShapeKind) String() string {
	if k == ShapeCircle {
		return "circle"
	}
	return "polygon"
}

// ShapeInterface is implemented by Circle and Polygon. Collision detection
// itself dispatches on concrete types (it needs polygon face normals and
// circle radii directly), so this interface only covers the operations every
// shape provides uniformly: mass/inertia derivation and bounding.
type ShapeInterface interface {
	Kind() ShapeKind
	ComputeMass(density float64) float64
	ComputeInertia(mass float64) float64
	ComputeAABB(t Transform) AABB
}

// Circle is a circular collision shape defined by its radius.
type Circle struct {
	Radius float64
}

// NewCircle validates and returns a Circle shape.
func NewCircle(radius float64) (*Circle, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: circle radius must be positive, got %v", ErrInvalidShape, radius)
	}
	return &Circle{Radius: radius}, nil
}

func (c *Circle) Kind() ShapeKind { return ShapeCircle }

// ComputeMass returns density * area for a circle.
func (c *Circle) ComputeMass(density float64) float64 {
	return density * math.Pi * c.Radius * c.Radius
}

// ComputeInertia returns mass * r^2, matching spec §3's Circle inertia.
func (c *Circle) ComputeInertia(mass float64) float64 {
	return mass * c.Radius * c.Radius
}

func (c *Circle) ComputeAABB(t Transform) AABB {
	r := vec2.V{X: c.Radius, Y: c.Radius}
	return AABB{Min: vec2.Sub(t.Pos, r), Max: vec2.Add(t.Pos, r)}
}

// Polygon is a convex polygon collision shape. Vertices are stored
// centroid-relative (invariant: constructor's pos is the body's centroid,
// per the "centroid position" resolution of the centroid-translation open
// question) in CCW order, with one outward unit face normal per edge.
type Polygon struct {
	Vertices    []vec2.V
	FaceNormals []vec2.V
}

const (
	minPolygonVertices = 3
	maxPolygonVertices = 16
)

// NewPolygon builds a Polygon from vertices given in CCW order. Vertices need
// not already be centroid-relative: NewPolygon computes the centroid (via
// the signed-area-weighted formula) and re-centers the stored vertices on
// it, leaving the caller's body position to mean that centroid in world
// space.
func NewPolygon(vertices []vec2.V) (*Polygon, error) {
	n := len(vertices)
	if n < minPolygonVertices || n > maxPolygonVertices {
		return nil, fmt.Errorf("%w: polygon must have between %d and %d vertices, got %d",
			ErrInvalidShape, minPolygonVertices, maxPolygonVertices, n)
	}

	centroid, area := polygonCentroidAndArea(vertices)
	if math.Abs(area) < vec2.Epsilon {
		return nil, fmt.Errorf("%w: polygon has zero area", ErrInvalidShape)
	}
	if !isConvexCCW(vertices) {
		return nil, fmt.Errorf("%w: polygon must be convex and wound CCW", ErrInvalidShape)
	}

	verts := make([]vec2.V, n)
	for i, v := range vertices {
		verts[i] = vec2.Sub(v, centroid)
	}

	normals := make([]vec2.V, n)
	for i := range verts {
		j := (i + 1) % n
		edge := vec2.Sub(verts[j], verts[i])
		// Outward normal of a CCW edge is the right-perpendicular of the
		// edge direction: (dy, -dx).
		normals[i] = vec2.Normalize(vec2.V{X: edge.Y, Y: -edge.X})
	}

	return &Polygon{Vertices: verts, FaceNormals: normals}, nil
}

// NewBoxPolygon is a convenience constructor for an axis-aligned rectangle
// centered at its own centroid, half-width hx and half-height hy.
func NewBoxPolygon(hx, hy float64) (*Polygon, error) {
	return NewPolygon([]vec2.V{
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
	})
}

func (p *Polygon) Kind() ShapeKind { return ShapePolygon }

// ComputeMass returns density * |signed area| of the stored (centroid
// relative) vertices.
func (p *Polygon) ComputeMass(density float64) float64 {
	_, area := polygonCentroidAndArea(p.Vertices)
	return density * math.Abs(area)
}

// ComputeInertia implements the standard 2D polygon inertia formula about
// the centroid: density * sum over edges of
// (1/12)*|v_i x v_(i+1)|*(|v_i|^2 + v_i.v_(i+1) + |v_(i+1)|^2).
//
// mass is the already-computed polygon mass (mass = density * area), so the
// density factor is recovered as mass/area here rather than threaded through
// separately.
func (p *Polygon) ComputeInertia(mass float64) float64 {
	_, area := polygonCentroidAndArea(p.Vertices)
	if area == 0 {
		return 0
	}
	density := mass / math.Abs(area)

	n := len(p.Vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		v1 := p.Vertices[i]
		v2 := p.Vertices[(i+1)%n]
		cr := math.Abs(vec2.Cross(v1, v2))
		integral := vec2.Dot(v1, v1) + vec2.Dot(v1, v2) + vec2.Dot(v2, v2)
		sum += (1.0 / 12.0) * cr * integral
	}
	return math.Abs(density * sum)
}

func (p *Polygon) ComputeAABB(t Transform) AABB {
	first := vec2.Add(t.Pos, t.Rot.MulVec(p.Vertices[0]))
	min, max := first, first
	for _, v := range p.Vertices[1:] {
		w := vec2.Add(t.Pos, t.Rot.MulVec(v))
		if w.X < min.X {
			min.X = w.X
		}
		if w.Y < min.Y {
			min.Y = w.Y
		}
		if w.X > max.X {
			max.X = w.X
		}
		if w.Y > max.Y {
			max.Y = w.Y
		}
	}
	return AABB{Min: min, Max: max}
}

// polygonCentroidAndArea computes the centroid and signed area of a
// (possibly not-yet-centered) vertex loop by summing triangle contributions
// from the origin, weighted 1/3 per spec §3.
func polygonCentroidAndArea(vertices []vec2.V) (vec2.V, float64) {
	n := len(vertices)
	centroid := vec2.Zero
	area := 0.0
	for i := 0; i < n; i++ {
		v1 := vertices[i]
		v2 := vertices[(i+1)%n]
		cr := vec2.Cross(v1, v2)
		area += cr
		centroid = vec2.Add(centroid, vec2.Scale(vec2.Add(v1, v2), cr))
	}
	area *= 0.5
	if math.Abs(area) < vec2.Epsilon {
		return vec2.Zero, area
	}
	centroid = vec2.Scale(centroid, 1.0/(6.0*area))
	return centroid, area
}

// isConvexCCW reports whether vertices form a convex polygon wound
// counter-clockwise: every consecutive edge turn has a non-negative cross
// product, and the overall winding (by signed area) is positive.
func isConvexCCW(vertices []vec2.V) bool {
	n := len(vertices)
	_, area := polygonCentroidAndArea(vertices)
	if area <= 0 {
		return false
	}
	for i := 0; i < n; i++ {
		a := vertices[i]
		b := vertices[(i+1)%n]
		c := vertices[(i+2)%n]
		if vec2.Cross(vec2.Sub(b, a), vec2.Sub(c, b)) < -vec2.Epsilon {
			return false
		}
	}
	return true
}
