package physics_test

import (
	"math"

	physics "github.com/BAVDE1/2d-physics"
	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/constraint"
	"github.com/BAVDE1/2d-physics/vec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/require"
)

func dynamicCircle(pos vec2.V, radius, restitution float64) *actor.Body {
	mat, err := actor.NewMaterial(1, restitution, 0.3, 0.2)
	Expect(err).NotTo(HaveOccurred())
	circle, err := actor.NewCircle(radius)
	Expect(err).NotTo(HaveOccurred())
	return actor.NewBody(pos, 0, circle, mat, false, 0)
}

func staticBox(pos vec2.V, hx, hy float64) *actor.Body {
	poly, err := actor.NewBoxPolygon(hx, hy)
	Expect(err).NotTo(HaveOccurred())
	return actor.NewBody(pos, 0, poly, actor.Material{}, true, 0)
}

func kineticEnergy(b *actor.Body) float64 {
	linear := 0.5 * b.Mass * vec2.LengthSq(b.LinVel)
	angular := 0.5 * b.Inertia * b.AngVel * b.AngVel
	return linear + angular
}

var _ = Describe("concrete scenarios (§8)", func() {
	It("S1: two unit circles head-on reverse approach velocity", func() {
		a := dynamicCircle(vec2.V{X: 0, Y: 0}, 5, 0.2)
		b := dynamicCircle(vec2.V{X: 9, Y: 0}, 5, 0.2)
		a.LinVel = vec2.V{X: 10, Y: 0}
		b.LinVel = vec2.V{X: -10, Y: 0}

		m := constraint.NewManifold(a, b)
		m.Generate()
		Expect(m.ContactCount).To(Equal(1))
		Expect(m.Normal.X).To(BeNumerically("~", 1, 1e-6))
		Expect(m.Normal.Y).To(BeNumerically("~", 0, 1e-6))
		Expect(m.Penetration).To(BeNumerically("~", 1, 1e-6))

		m.Resolve(vec2.Zero, 1.0/60.0)
		Expect(a.LinVel.X).To(BeNumerically("<", 0))
		Expect(b.LinVel.X).To(BeNumerically(">", 0))
	})

	It("S2: a falling circle comes to rest on a static slab", func() {
		w := physics.NewWorld(physics.WorldConfig{})
		floor := staticBox(vec2.V{X: 50, Y: 160}, 100, 5)
		ball := dynamicCircle(vec2.V{X: 60, Y: 20}, 5, 0.2)
		w.AddBody(floor)
		w.AddBody(ball)

		for i := 0; i < 240; i++ {
			w.Step()
		}

		Expect(ball.Transform.Pos.Y).To(BeNumerically(">=", 155))
		Expect(ball.Transform.Pos.Y).To(BeNumerically("<=", 160))
		Expect(vec2.Length(ball.LinVel)).To(BeNumerically("<", 2))
	})

	It("S3: two overlapping squares yield a two-point manifold", func() {
		a := actor.NewBody(vec2.V{X: 100, Y: 100}, 0, must(actor.NewBoxPolygon(5, 5)), must(actor.NewMaterial(1, 0, 0, 0)), false, 0)
		b := actor.NewBody(vec2.V{X: 105, Y: 100}, 0, must(actor.NewBoxPolygon(5, 5)), must(actor.NewMaterial(1, 0, 0, 0)), false, 0)

		m := constraint.NewManifold(a, b)
		m.Generate()

		Expect(m.ContactCount).To(Equal(2))
		Expect(math.Abs(m.Normal.X)).To(BeNumerically("~", 1, 1e-6))
		Expect(m.Normal.Y).To(BeNumerically("~", 0, 1e-6))
		Expect(m.Penetration).To(BeNumerically("~", 5, 1e-6))
	})

	It("S4: a triangle resting on a static floor does not tunnel through it", func() {
		w := physics.NewWorld(physics.WorldConfig{})
		floorTop := 150.0 - 10.0
		floor := staticBox(vec2.V{X: 100, Y: 150}, 150, 10)
		tri := must(actor.NewPolygon([]vec2.V{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}))
		wedge := actor.NewBody(vec2.V{X: 100, Y: 100}, 0, tri, must(actor.NewMaterial(1, 0, 0.4, 0.3)), false, 0)
		w.AddBody(floor)
		w.AddBody(wedge)

		maxAngVel := 0.0
		for i := 0; i < 600; i++ {
			w.Step()
			if math.Abs(wedge.AngVel) > maxAngVel {
				maxAngVel = math.Abs(wedge.AngVel)
			}
			Expect(wedge.Transform.Pos.Y).To(BeNumerically("<=", floorTop+physics.DefaultPenetrationAllowance+1e-6))
		}
		Expect(maxAngVel).To(BeNumerically("<", 50))
	})

	It("S5: coincident circles fall back to the deterministic normal", func() {
		a := dynamicCircle(vec2.V{X: 3, Y: 3}, 5, 0)
		b := dynamicCircle(vec2.V{X: 3, Y: 3}, 5, 0)

		m := constraint.NewManifold(a, b)
		m.Generate()

		Expect(m.ContactCount).To(Equal(1))
		Expect(m.Normal).To(Equal(vec2.V{X: 1, Y: 0}))
		Expect(m.Penetration).To(BeNumerically("~", 5, 1e-9))

		m.Resolve(vec2.Zero, 1.0/60.0)
		m.PositionalCorrection(physics.DefaultPenetrationAllowance, physics.DefaultPositionalCorrectionPercent)
		Expect(a.Transform.Pos.X).To(BeNumerically("<", b.Transform.Pos.X))
	})

	It("S6: SAT reference-face selection stays stable across steps", func() {
		w := physics.NewWorld(physics.WorldConfig{Gravity: vec2.Zero})
		a := actor.NewBody(vec2.V{X: 0, Y: 0}, math.Pi/4, must(actor.NewBoxPolygon(5, 5)), must(actor.NewMaterial(1, 0, 0.2, 0.2)), false, 0)
		b := actor.NewBody(vec2.V{X: 8, Y: 0}, math.Pi/4+0.01, must(actor.NewBoxPolygon(5, 5)), must(actor.NewMaterial(1, 0, 0.2, 0.2)), false, 0)
		w.AddBody(a)
		w.AddBody(b)

		var lastNormal vec2.V
		flips := 0
		for i := 0; i < 60; i++ {
			w.Step()
			pairs := physics.BroadPhase(w.Bodies)
			manifolds := physics.NarrowPhase(pairs)
			if len(manifolds) == 0 {
				continue
			}
			n := manifolds[0].Normal
			if i > 0 && vec2.Dot(n, lastNormal) < 0 {
				flips++
			}
			lastNormal = n
		}
		Expect(flips).To(BeNumerically("<=", 1))
	})
})

var _ = Describe("quantified invariants (§8)", func() {
	It("1: kinetic energy does not increase under e=1, zero gravity, no friction", func() {
		a := dynamicCircle(vec2.V{X: 0, Y: 0}, 5, 1)
		b := dynamicCircle(vec2.V{X: 9, Y: 0}, 5, 1)
		a.Material.StaticFriction, a.Material.DynamicFriction = 0, 0
		b.Material.StaticFriction, b.Material.DynamicFriction = 0, 0
		a.LinVel = vec2.V{X: 10, Y: 0}
		b.LinVel = vec2.V{X: -10, Y: 0}

		before := kineticEnergy(a) + kineticEnergy(b)

		m := constraint.NewManifold(a, b)
		m.Generate()
		m.Resolve(vec2.Zero, 1.0/60.0)

		after := kineticEnergy(a) + kineticEnergy(b)
		Expect(after).To(BeNumerically("<=", before*(1+1e-3)))
	})

	It("2: momentum is conserved for an isolated pair with no gravity or friction", func() {
		a := dynamicCircle(vec2.V{X: 0, Y: 0}, 5, 0.4)
		b := dynamicCircle(vec2.V{X: 9, Y: 0}, 5, 0.4)
		a.Material.StaticFriction, a.Material.DynamicFriction = 0, 0
		b.Material.StaticFriction, b.Material.DynamicFriction = 0, 0
		a.LinVel = vec2.V{X: 6, Y: 0}
		b.LinVel = vec2.V{X: -4, Y: 0}

		before := vec2.Add(vec2.Scale(a.LinVel, a.Mass), vec2.Scale(b.LinVel, b.Mass))

		m := constraint.NewManifold(a, b)
		m.Generate()
		m.Resolve(vec2.Zero, 1.0/60.0)

		after := vec2.Add(vec2.Scale(a.LinVel, a.Mass), vec2.Scale(b.LinVel, b.Mass))
		require.InDelta(GinkgoT(), before.X, after.X, 1e-6)
		require.InDelta(GinkgoT(), before.Y, after.Y, 1e-6)
	})

	It("3: a static body's pose and velocities never change across a step", func() {
		w := physics.NewWorld(physics.WorldConfig{})
		floor := staticBox(vec2.V{X: 0, Y: 0}, 50, 5)
		ball := dynamicCircle(vec2.V{X: 0, Y: -6}, 2, 0.5)
		w.AddBody(floor)
		w.AddBody(ball)

		posBefore, orientBefore := floor.Transform.Pos, floor.Transform.Orient
		for i := 0; i < 30; i++ {
			w.Step()
		}
		Expect(floor.Transform.Pos).To(Equal(posBefore))
		Expect(floor.Transform.Orient).To(Equal(orientBefore))
		Expect(floor.LinVel).To(Equal(vec2.Zero))
		Expect(floor.AngVel).To(Equal(0.0))
	})

	It("4: a stack of circles at rest does not grow its penetration", func() {
		w := physics.NewWorld(physics.WorldConfig{})
		floor := staticBox(vec2.V{X: 100, Y: 220}, 150, 5)
		w.AddBody(floor)

		const k = 5
		balls := make([]*actor.Body, k)
		for i := 0; i < k; i++ {
			balls[i] = dynamicCircle(vec2.V{X: 100, Y: 200 - float64(i)*11}, 5, 0.05)
			w.AddBody(balls[i])
		}

		for i := 0; i < 300; i++ {
			w.Step()
		}

		maxPenetration := 0.0
		pairs := physics.BroadPhase(w.Bodies)
		for _, m := range physics.NarrowPhase(pairs) {
			if m.Penetration > maxPenetration {
				maxPenetration = m.Penetration
			}
		}
		Expect(maxPenetration).To(BeNumerically("<=", physics.DefaultPenetrationAllowance*2))
	})

	It("5: every generated manifold has a unit normal and non-negative penetration", func() {
		a := dynamicCircle(vec2.V{X: 0, Y: 0}, 5, 0)
		b := dynamicCircle(vec2.V{X: 9, Y: 0}, 5, 0)
		m := constraint.NewManifold(a, b)
		m.Generate()

		Expect(vec2.Dot(m.Normal, vec2.Sub(b.Transform.Pos, a.Transform.Pos))).To(BeNumerically(">=", 0))
		Expect(vec2.Length(m.Normal)).To(BeNumerically("~", 1, 1e-6))
		Expect(m.Penetration).To(BeNumerically(">=", 0))
	})

	It("6: two identically constructed worlds stay byte-identical", func() {
		build := func() *physics.World {
			w := physics.NewWorld(physics.WorldConfig{})
			w.AddBody(staticBox(vec2.V{X: 50, Y: 160}, 100, 5))
			w.AddBody(dynamicCircle(vec2.V{X: 60, Y: 20}, 5, 0.3))
			return w
		}
		w1, w2 := build(), build()

		for i := 0; i < 120; i++ {
			w1.Step()
			w2.Step()
		}

		Expect(len(w1.Bodies)).To(Equal(len(w2.Bodies)))
		for i := range w1.Bodies {
			Expect(w1.Bodies[i].Transform.Pos).To(Equal(w2.Bodies[i].Transform.Pos))
			Expect(w1.Bodies[i].LinVel).To(Equal(w2.Bodies[i].LinVel))
		}
	})

	It("7: the rotation matrix is refreshed on every integrate_position", func() {
		b := dynamicCircle(vec2.Zero, 1, 0)
		b.AngVel = 1.5
		b.IntegratePosition(1.0 / 60.0)

		Expect(b.Transform.Rot).To(Equal(vec2.FromAngle(b.Transform.Orient)))
	})
})

func must[T any](v T, err error) T {
	Expect(err).NotTo(HaveOccurred())
	return v
}
