// Package systems contains ECS systems for the scene.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harbor/components"
)

// WrapSet records which kinds wrapped during a tick.
type WrapSet uint8

// Add marks a kind as wrapped.
func (s *WrapSet) Add(k components.Kind) {
	*s |= 1 << k
}

// Has reports whether a kind wrapped.
func (s WrapSet) Has(k components.Kind) bool {
	return s&(1<<k) != 0
}

// Empty reports whether nothing wrapped.
func (s WrapSet) Empty() bool {
	return s == 0
}

// MotionSystem advances entity offsets by their velocity and wraps them.
type MotionSystem struct {
	filter ecs.Filter4[components.Position, components.Velocity, components.Wrap, components.Actor]
}

// NewMotionSystem creates a new motion system.
func NewMotionSystem(w *ecs.World) *MotionSystem {
	return &MotionSystem{
		filter: *ecs.NewFilter4[components.Position, components.Velocity, components.Wrap, components.Actor](w),
	}
}

// Update runs one tick. The wrap check follows the increment directly, so no
// offset is ever observed beyond its bound between ticks.
func (s *MotionSystem) Update() WrapSet {
	var wrapped WrapSet

	query := s.filter.Query()
	for query.Next() {
		pos, vel, wrap, actor := query.Get()

		pos.X += vel.X
		if pos.X > wrap.Max {
			pos.X = wrap.Min
			wrapped.Add(actor.Kind)
		}
	}

	return wrapped
}
