package actor

import "github.com/BAVDE1/2d-physics/vec2"

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min vec2.V
	Max vec2.V
}

// ContainsPoint reports whether point lies within the AABB.
func (a AABB) ContainsPoint(point vec2.V) bool {
	return point.X >= a.Min.X && point.X <= a.Max.X &&
		point.Y >= a.Min.Y && point.Y <= a.Max.Y
}

// Overlaps reports whether a and other intersect on both axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X >= other.Min.X && a.Min.X <= other.Max.X &&
		a.Max.Y >= other.Min.Y && a.Min.Y <= other.Max.Y
}
