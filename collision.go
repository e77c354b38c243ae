// Package physics implements a 2D impulse-based rigid body simulation:
// circle and convex-polygon bodies under gravity and external forces,
// resolved with sequential impulses (restitution, Coulomb friction) and
// Baumgarte positional correction, advanced by a fixed-step world scheduler.
package physics

import (
	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/constraint"
)

// CollisionPair is a pair of bodies whose AABBs overlap and might collide.
type CollisionPair struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

// shouldIgnorePair reports whether a pair can never produce a meaningful
// contact: both static, or on different layers with neither static (§4.6
// step 2).
func shouldIgnorePair(a, b *actor.Body) bool {
	if a.IsStatic && b.IsStatic {
		return true
	}
	if a.Layer != b.Layer && !a.IsStatic && !b.IsStatic {
		return true
	}
	return false
}

// BroadPhase performs the naive all-pairs AABB overlap test. Non-goals
// explicitly exclude anything beyond this; SpatialGrid exists only as
// exploratory, unwired code.
func BroadPhase(bodies []*actor.Body) []CollisionPair {
	pairs := make([]CollisionPair, 0)

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			bodyA, bodyB := bodies[i], bodies[j]

			if shouldIgnorePair(bodyA, bodyB) {
				continue
			}
			if bodyA.AABB().Overlaps(bodyB.AABB()) {
				pairs = append(pairs, CollisionPair{bodyA, bodyB})
			}
		}
	}

	return pairs
}

// NarrowPhase generates a manifold per candidate pair and keeps only those
// with an actual contact.
func NarrowPhase(pairs []CollisionPair) []*constraint.Manifold {
	manifolds := make([]*constraint.Manifold, 0, len(pairs))

	for _, pair := range pairs {
		m := constraint.NewManifold(pair.BodyA, pair.BodyB)
		m.Generate()
		if m.ContactCount > 0 {
			manifolds = append(manifolds, m)
		}
	}

	return manifolds
}
