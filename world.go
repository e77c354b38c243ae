package physics

import (
	"github.com/BAVDE1/2d-physics/actor"
	"github.com/BAVDE1/2d-physics/vec2"
)

// Default tuning constants (§6 runtime parameters), used by NewWorld when a
// WorldConfig field is left at its zero value.
const (
	DefaultDT                          = 1.0 / 60.0
	DefaultIterations                  = 8
	DefaultPenetrationAllowance         = 0.05
	DefaultPositionalCorrectionPercent = 0.2
)

// DefaultGravity is the screen-convention default: positive Y falls.
var DefaultGravity = vec2.V{X: 0, Y: 100}

// OutOfBoundsFunc reports whether a body should be dropped from the world
// after a step. A nil func never removes anything.
type OutOfBoundsFunc func(b *actor.Body) bool

// WorldConfig holds the per-world tunables the step pipeline reads, so two
// worlds never share these by accident. The SAT bias constants (constraint
// package) and vec2.Epsilon are package-level constants, and the resting
// threshold is derived from Gravity and DT inside Resolve; none of these is
// configurable per world.
type WorldConfig struct {
	Gravity     vec2.V
	AirVelocity vec2.V

	DT         float64
	Iterations int

	PenetrationAllowance         float64
	PositionalCorrectionPercent float64

	OutOfBoundsFunc OutOfBoundsFunc
	Logger          Logger
}

// WithDefaults returns a copy of cfg with every zero-valued tunable replaced
// by its §6 default.
func (cfg WorldConfig) WithDefaults() WorldConfig {
	if cfg.Gravity == vec2.Zero {
		cfg.Gravity = DefaultGravity
	}
	if cfg.DT == 0 {
		cfg.DT = DefaultDT
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = DefaultIterations
	}
	if cfg.PenetrationAllowance == 0 {
		cfg.PenetrationAllowance = DefaultPenetrationAllowance
	}
	if cfg.PositionalCorrectionPercent == 0 {
		cfg.PositionalCorrectionPercent = DefaultPositionalCorrectionPercent
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	return cfg
}

// World owns a body collection and advances it by fixed-duration steps. It
// is single-threaded cooperative: a step is a deterministic sequence of
// passes over bodies and manifolds, with no suspension points (§5).
type World struct {
	Config WorldConfig

	Bodies []*actor.Body

	accumulator float64
}

// NewWorld returns a World with cfg's zero fields replaced by their
// defaults.
func NewWorld(cfg WorldConfig) *World {
	return &World{Config: cfg.WithDefaults()}
}

// AddBody adds a body to the world.
func (w *World) AddBody(b *actor.Body) {
	w.Bodies = append(w.Bodies, b)
}

// RemoveBody removes the first occurrence of b from the world, if present.
func (w *World) RemoveBody(b *actor.Body) {
	for i, existing := range w.Bodies {
		if existing == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			return
		}
	}
}

// Advance accumulates elapsed real time and runs as many fixed DT steps as
// it covers, clamping the accumulator to 0.2s so a long stall (debugger
// pause, GC hiccup) cannot spiral into catching up frames forever.
func (w *World) Advance(elapsed float64) {
	const spiralOfDeathClamp = 0.2

	w.accumulator += elapsed
	if w.accumulator > spiralOfDeathClamp {
		w.accumulator = spiralOfDeathClamp
	}

	for w.accumulator >= w.Config.DT {
		w.Step()
		w.accumulator -= w.Config.DT
	}
}

// Step runs exactly one fixed-duration step of the §4.6 pipeline.
func (w *World) Step() {
	dt := w.Config.DT

	pairs := BroadPhase(w.Bodies)
	manifolds := NarrowPhase(pairs)

	for _, b := range w.Bodies {
		b.IntegrateVelocity(dt, w.Config.Gravity, w.Config.AirVelocity)
	}

	for i := 0; i < w.Config.Iterations; i++ {
		for _, m := range manifolds {
			m.Resolve(w.Config.Gravity, dt)
		}
	}

	for _, b := range w.Bodies {
		b.IntegratePosition(dt)
		b.IntegrateVelocity(dt, w.Config.Gravity, w.Config.AirVelocity)
	}

	for _, m := range manifolds {
		m.PositionalCorrection(w.Config.PenetrationAllowance, w.Config.PositionalCorrectionPercent)
	}

	w.clearAndClamp()
}

// clearAndClamp runs the per-body housekeeping pass: clear force/torque
// accumulators, re-zero static-body velocities, and drop bodies the
// out-of-bounds predicate flags.
func (w *World) clearAndClamp() {
	kept := w.Bodies[:0]
	for _, b := range w.Bodies {
		b.ClearForces()
		b.StaticClamp()

		if w.Config.OutOfBoundsFunc != nil && w.Config.OutOfBoundsFunc(b) {
			w.Config.Logger.Debugf("removing out-of-bounds body at %v", b.Transform.Pos)
			continue
		}
		kept = append(kept, b)
	}
	w.Bodies = kept
}
