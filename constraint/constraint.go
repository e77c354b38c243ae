// Package constraint builds contact manifolds between pairs of bodies (the
// four shape-pair SAT/circle cases) and resolves them into impulses: normal
// restitution, Coulomb friction, and Baumgarte-style positional correction.
package constraint

import (
	"math"

	"github.com/BAVDE1/2d-physics/actor"
)

// ComputeRestitution combines two materials' restitution as the minimum of
// the two — a perfectly inelastic body never bounces off a perfectly
// elastic one.
func ComputeRestitution(matA, matB actor.Material) float64 {
	return math.Min(matA.Restitution, matB.Restitution)
}

// ComputeStaticFriction combines two materials' static friction coefficients
// as sqrt(a^2 + b^2).
func ComputeStaticFriction(matA, matB actor.Material) float64 {
	return math.Sqrt(matA.StaticFriction*matA.StaticFriction + matB.StaticFriction*matB.StaticFriction)
}

// ComputeDynamicFriction combines two materials' dynamic friction
// coefficients as sqrt(a^2 + b^2).
func ComputeDynamicFriction(matA, matB actor.Material) float64 {
	return math.Sqrt(matA.DynamicFriction*matA.DynamicFriction + matB.DynamicFriction*matB.DynamicFriction)
}
