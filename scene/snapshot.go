package scene

import "math"

// Snapshot is an immutable copy of the scene taken after a tick.
type Snapshot struct {
	Night   bool
	Braking bool

	CarX      float32
	ShipX     float32
	SailboatX float32
	BirdsX    float32
	BirdsY    float32

	Elapsed float64 // seconds since the clock started
	Tick    int64
}

// ElapsedMS returns Elapsed rounded to whole milliseconds.
func (s Snapshot) ElapsedMS() int64 {
	return int64(math.Round(s.Elapsed * 1000))
}
