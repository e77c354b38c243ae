package constraint

import (
	"math"

	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/vec2"
)

// Resolve applies one sequential-impulse pass over the manifold's contacts:
// a normal impulse (with restitution and the resting-jitter clamp) followed
// by a Coulomb friction impulse. No-op if ContactCount is 0. gravity and dt
// are only used to compute the resting-velocity threshold (§4.4, §9
// "Resting jitter fix").
func (m *Manifold) Resolve(gravity vec2.V, dt float64) {
	if m.ContactCount == 0 {
		return
	}

	a, b := m.BodyA, m.BodyB
	restingThreshold := vec2.LengthSq(vec2.Scale(gravity, dt)) + vec2.Epsilon

	for i := 0; i < m.ContactCount; i++ {
		ra := vec2.Sub(m.ContactPoints[i], a.Transform.Pos)
		rb := vec2.Sub(m.ContactPoints[i], b.Transform.Pos)

		rv := relativeVelocity(a, b, ra, rb)
		contactVel := vec2.Dot(rv, m.Normal)
		if contactVel > 0 {
			continue
		}

		raCrossN := vec2.Cross(ra, m.Normal)
		rbCrossN := vec2.Cross(rb, m.Normal)
		invMassSum := a.InvMass + b.InvMass +
			raCrossN*raCrossN*a.InvInertia + rbCrossN*rbCrossN*b.InvInertia
		if invMassSum == 0 {
			continue
		}

		// Restitution is applied per axis; the resting clamp zeroes only its
		// vertical (+Y) component.
		e := ComputeRestitution(a.Material, b.Material)
		eY := e
		if rv.Y*rv.Y <= restingThreshold {
			eY = 0
		}

		base := -contactVel / invMassSum / float64(m.ContactCount)
		impulse := vec2.V{X: m.Normal.X * (1 + e) * base, Y: m.Normal.Y * (1 + eY) * base}
		j := vec2.Dot(impulse, m.Normal)
		a.ApplyImpulse(vec2.Neg(impulse), ra)
		b.ApplyImpulse(impulse, rb)

		// Friction pass: recompute relative velocity with the normal impulse
		// already applied.
		rv = relativeVelocity(a, b, ra, rb)
		tangent := vec2.Sub(rv, vec2.Scale(m.Normal, vec2.Dot(rv, m.Normal)))
		if vec2.LengthSq(tangent) < vec2.Epsilon {
			continue
		}
		tangent = vec2.Normalize(tangent)

		jt := -vec2.Dot(rv, tangent) / invMassSum / float64(m.ContactCount)

		staticFriction := ComputeStaticFriction(a.Material, b.Material)
		dynamicFriction := ComputeDynamicFriction(a.Material, b.Material)

		var frictionImpulse vec2.V
		if math.Abs(jt) < j*staticFriction {
			frictionImpulse = vec2.Scale(tangent, jt)
		} else {
			frictionImpulse = vec2.Scale(tangent, -j*dynamicFriction)
		}
		a.ApplyImpulse(vec2.Neg(frictionImpulse), ra)
		b.ApplyImpulse(frictionImpulse, rb)
	}
}

// relativeVelocity returns the velocity of B's contact point relative to
// A's, including each body's angular contribution.
func relativeVelocity(a, b *actor.Body, ra, rb vec2.V) vec2.V {
	vA := vec2.Add(a.LinVel, vec2.CrossSV(a.AngVel, ra))
	vB := vec2.Add(b.LinVel, vec2.CrossSV(b.AngVel, rb))
	return vec2.Sub(vB, vA)
}

// PositionalCorrection pushes the pair apart along the normal by a fraction
// of the penetration beyond allowance, counteracting floating-point drift
// without the jitter a full correction in one step would cause. Static
// bodies receive zero correction via their zero inverse mass.
func (m *Manifold) PositionalCorrection(penetrationAllowance, correctionPercent float64) {
	if m.ContactCount == 0 {
		return
	}

	a, b := m.BodyA, m.BodyB
	invMassSum := a.InvMass + b.InvMass
	if invMassSum == 0 {
		return
	}

	correction := math.Max(m.Penetration-penetrationAllowance, 0) / invMassSum * correctionPercent
	a.Transform.Pos = vec2.Sub(a.Transform.Pos, vec2.Scale(m.Normal, a.InvMass*correction))
	b.Transform.Pos = vec2.Add(b.Transform.Pos, vec2.Scale(m.Normal, b.InvMass*correction))
}
