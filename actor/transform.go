package actor

import "github.com/BAVDE1/2d-physics/vec2"

// Transform is a body's pose: the world position of its centroid, its
// orientation in radians, and the rotation matrix derived from that
// orientation. Rot is cached rather than recomputed on every read — it must
// be refreshed whenever Orient changes and before collision code runs
// (invariant 2).
type Transform struct {
	Pos    vec2.V
	Orient float64
	Rot    vec2.M
}

// NewTransform returns an identity transform at the origin.
func NewTransform() Transform {
	return Transform{
		Pos:    vec2.Zero,
		Orient: 0,
		Rot:    vec2.Identity(),
	}
}

// SetOrient sets the orientation and refreshes the cached rotation matrix.
func (t *Transform) SetOrient(radians float64) {
	t.Orient = radians
	t.Rot = vec2.FromAngle(radians)
}
