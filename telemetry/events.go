// Package telemetry provides scene health tracking and experiment output.
package telemetry

import "github.com/pthm-cable/harbor/scene"

// InputEvent records one key action that changed the scene.
type InputEvent struct {
	Tick     int64   `csv:"tick"`
	Elapsed  float64 `csv:"elapsed"`
	Event    string  `csv:"event"`
	Key      string  `csv:"key"`
	CarSpeed float32 `csv:"car_speed"`
	Night    bool    `csv:"night"`
	Expanded bool    `csv:"expanded"`
	Braking  bool    `csv:"braking"`
}

// NewInputEvent captures the scene right after ev was applied.
func NewInputEvent(s *scene.State, ev scene.Event, key rune, elapsed float64) InputEvent {
	return InputEvent{
		Tick:     s.TickCount(),
		Elapsed:  elapsed,
		Event:    ev.String(),
		Key:      string(key),
		CarSpeed: s.CarSpeed(),
		Night:    s.Night(),
		Expanded: s.Expanded(),
		Braking:  s.Braking(),
	}
}
