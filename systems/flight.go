package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/harbor/components"
)

// FlightSystem recomputes the vertical offset of oscillating entities.
type FlightSystem struct {
	filter ecs.Filter2[components.Position, components.Oscillator]
}

// NewFlightSystem creates a new flight system.
func NewFlightSystem(w *ecs.World) *FlightSystem {
	return &FlightSystem{
		filter: *ecs.NewFilter2[components.Position, components.Oscillator](w),
	}
}

// Update sets Y from wall-clock elapsed seconds, so the bobbing rate does not
// depend on how regularly ticks arrive.
func (s *FlightSystem) Update(elapsed float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, osc := query.Get()
		pos.Y = osc.BaseY + osc.Amplitude*float32(math.Sin(elapsed*float64(osc.Frequency)))
	}
}
