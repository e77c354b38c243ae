package actor

import "errors"

// Sentinel errors returned by shape and body construction. Construction
// validates; nothing past construction time returns an error (§7 Policy) —
// mid-solve degeneracies are absorbed by deterministic fallbacks instead.
var (
	// ErrInvalidShape is returned for a polygon with fewer than 3 or more
	// than 16 vertices, a non-convex or non-CCW polygon, a zero-area
	// polygon, or a non-positive circle radius.
	ErrInvalidShape = errors.New("actor: invalid shape")

	// ErrInvalidMaterial is returned for non-positive density, restitution
	// outside [0,1], or negative friction coefficients.
	ErrInvalidMaterial = errors.New("actor: invalid material")
)
