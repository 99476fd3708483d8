// Package scene owns the animated harbor state: the entity world, the mode
// flags, and the per-tick update.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harbor/components"
	"github.com/pthm-cable/harbor/config"
	"github.com/pthm-cable/harbor/systems"
)

// State is the complete scene state. It is owned by a single host loop.
type State struct {
	cfg   *config.Config
	world *ecs.World

	moverMapper *ecs.Map4[components.Position, components.Velocity, components.Wrap, components.Actor]
	flyerMapper *ecs.Map5[components.Position, components.Velocity, components.Wrap, components.Actor, components.Oscillator]
	posMap      *ecs.Map[components.Position]
	velMap      *ecs.Map[components.Velocity]

	entities [components.NumKinds]ecs.Entity
	present  [components.NumKinds]bool

	motion *systems.MotionSystem
	flight *systems.FlightSystem

	// Called with a phase ID before each system runs
	phaseHook func(phase string)

	night    bool
	braking  bool
	expanded bool

	tick    int64
	elapsed float64
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Tick    int64
	Wrapped systems.WrapSet
}

// NewState creates the scene and spawns every entity listed in cfg.
func NewState(cfg *config.Config) *State {
	world := ecs.NewWorld()

	s := &State{
		cfg:   cfg,
		world: world,
		moverMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Wrap,
			components.Actor,
		](world),
		flyerMapper: ecs.NewMap5[
			components.Position,
			components.Velocity,
			components.Wrap,
			components.Actor,
			components.Oscillator,
		](world),
		posMap: ecs.NewMap[components.Position](world),
		velMap: ecs.NewMap[components.Velocity](world),
		motion: systems.NewMotionSystem(world),
		flight: systems.NewFlightSystem(world),
	}

	for _, ec := range cfg.Entities {
		kind, ok := components.ParseKind(ec.Kind)
		if !ok {
			continue
		}
		s.spawn(kind, ec)
	}

	return s
}

// spawn creates one moving entity from its config row.
func (s *State) spawn(kind components.Kind, ec config.EntityConfig) {
	pos := components.Position{X: ec.StartX, Y: ec.Y}
	vel := components.Velocity{X: ec.Velocity}
	wrap := components.Wrap{Min: ec.WrapMin, Max: ec.WrapMax}
	actor := components.Actor{Kind: kind}

	var e ecs.Entity
	if ec.Oscillator != nil {
		osc := components.Oscillator{
			BaseY:     ec.Y,
			Amplitude: ec.Oscillator.Amplitude,
			Frequency: ec.Oscillator.Frequency,
		}
		e = s.flyerMapper.NewEntity(&pos, &vel, &wrap, &actor, &osc)
	} else {
		e = s.moverMapper.NewEntity(&pos, &vel, &wrap, &actor)
	}

	s.entities[kind] = e
	s.present[kind] = true
}

// Tick advances the scene by one clock period. elapsed is wall-clock seconds
// since the clock started.
func (s *State) Tick(elapsed float64) TickResult {
	s.enterPhase(systems.PhaseMotion)
	wrapped := s.motion.Update()
	s.enterPhase(systems.PhaseFlight)
	s.flight.Update(elapsed)
	s.elapsed = elapsed
	s.tick++
	return TickResult{Tick: s.tick, Wrapped: wrapped}
}

// SetPhaseHook installs a callback run before each system in Tick.
func (s *State) SetPhaseHook(fn func(phase string)) {
	s.phaseHook = fn
}

func (s *State) enterPhase(phase string) {
	if s.phaseHook != nil {
		s.phaseHook(phase)
	}
}

// Position returns the current position of a kind, if it was spawned.
func (s *State) Position(kind components.Kind) (components.Position, bool) {
	if kind >= components.NumKinds || !s.present[kind] {
		return components.Position{}, false
	}
	return *s.posMap.Get(s.entities[kind]), true
}

// CarSpeed returns the car's per-tick step.
func (s *State) CarSpeed() float32 {
	if !s.present[components.KindCar] {
		return 0
	}
	return s.velMap.Get(s.entities[components.KindCar]).X
}

func (s *State) setCarSpeed(v float32) {
	if !s.present[components.KindCar] {
		return
	}
	s.velMap.Get(s.entities[components.KindCar]).X = v
}

// Night reports whether night mode is active.
func (s *State) Night() bool { return s.night }

// Braking reports whether the brake is held.
func (s *State) Braking() bool { return s.braking }

// Expanded reports whether the wide projection extent is active.
func (s *State) Expanded() bool { return s.expanded }

// TickCount returns the number of ticks run.
func (s *State) TickCount() int64 { return s.tick }

// Extent returns the orthographic extent currently selected.
func (s *State) Extent() config.ExtentConfig {
	if s.expanded {
		return s.cfg.Projection.Expanded
	}
	return s.cfg.Projection.Primary
}

// Snapshot returns a read-only view of everything the renderer needs.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Night:   s.night,
		Braking: s.braking,
		Elapsed: s.elapsed,
		Tick:    s.tick,
	}
	if p, ok := s.Position(components.KindCar); ok {
		snap.CarX = p.X
	}
	if p, ok := s.Position(components.KindShip); ok {
		snap.ShipX = p.X
	}
	if p, ok := s.Position(components.KindSailboat); ok {
		snap.SailboatX = p.X
	}
	if p, ok := s.Position(components.KindBirds); ok {
		snap.BirdsX = p.X
		snap.BirdsY = p.Y
	}
	return snap
}
