package components

// Position is an entity's horizontal offset and vertical baseline in world units.
type Position struct {
	X, Y float32
}

// Velocity is the horizontal step applied once per tick.
type Velocity struct {
	X float32
}

// Wrap bounds an entity's horizontal offset.
// Once X exceeds Max it is reset to Min on the same tick.
type Wrap struct {
	Min, Max float32
}

// Contains reports whether x lies within the wrap range.
func (w Wrap) Contains(x float32) bool {
	return x >= w.Min && x <= w.Max
}
