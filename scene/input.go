package scene

import "log/slog"

// Event describes the effect of a key press on the scene.
type Event uint8

const (
	EventNone Event = iota
	EventSpeedChanged
	EventModeChanged
	EventProjectionChanged
	EventBrakeOn
	EventBrakeOff
	EventAlert
)

var eventNames = [...]string{
	EventNone:              "none",
	EventSpeedChanged:      "speed_changed",
	EventModeChanged:       "mode_changed",
	EventProjectionChanged: "projection_changed",
	EventBrakeOn:           "brake_on",
	EventBrakeOff:          "brake_off",
	EventAlert:             "alert",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// HandleKeyDown applies a key-down character. Unbound keys return EventNone.
func (s *State) HandleKeyDown(r rune) Event {
	car := s.cfg.Car

	switch r {
	case '+':
		s.setCarSpeed(min(s.CarSpeed()+car.SpeedStep, car.MaxSpeed))
		slog.Info("car speed", "speed", s.CarSpeed())
		return EventSpeedChanged
	case '-':
		s.setCarSpeed(max(s.CarSpeed()-car.SpeedStep, car.MinSpeed))
		slog.Info("car speed", "speed", s.CarSpeed())
		return EventSpeedChanged
	case 'n', 'N':
		s.night = !s.night
		return EventModeChanged
	case 'o', 'O':
		s.expanded = !s.expanded
		return EventProjectionChanged
	case 'b', 'B':
		s.braking = true
		s.setCarSpeed(max(s.CarSpeed()-car.BrakeDecrement, car.BrakeFloor))
		slog.Info("car braking", "speed", s.CarSpeed())
		return EventBrakeOn
	case 's', 'S':
		return EventAlert
	}
	return EventNone
}

// HandleKeyUp applies a key-up character. Only the brake key has a release action.
func (s *State) HandleKeyUp(r rune) Event {
	switch r {
	case 'b', 'B':
		car := s.cfg.Car
		s.braking = false
		s.setCarSpeed(min(s.CarSpeed()+car.ReleaseIncrement, car.CruiseSpeed))
		slog.Info("brakes released", "speed", s.CarSpeed())
		return EventBrakeOff
	}
	return EventNone
}

// HandleMouse accepts a mouse button event. The scene has no pointer
// interaction, so it is only logged.
func (s *State) HandleMouse(button int, worldX, worldY float32) {
	slog.Debug("mouse button", "button", button, "x", worldX, "y", worldY)
}
