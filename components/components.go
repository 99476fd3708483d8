// Package components defines ECS components for the scene.
package components

import "github.com/pthm-cable/harbor/config"

// Kind identifies a moving entity in the scene.
type Kind uint8

const (
	KindCar Kind = iota
	KindShip
	KindSailboat
	KindBirds

	NumKinds
)

var kindNames = [NumKinds]string{
	KindCar:      config.KindCar,
	KindShip:     config.KindShip,
	KindSailboat: config.KindSailboat,
	KindBirds:    config.KindBirds,
}

// String returns the config name of the kind.
func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a config kind name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Actor tags an entity with its kind.
type Actor struct {
	Kind Kind
}

// Oscillator drives Position.Y as BaseY + Amplitude*sin(elapsed*Frequency).
// Y is recomputed from wall-clock time every tick, never integrated.
type Oscillator struct {
	BaseY     float32
	Amplitude float32
	Frequency float32 // radians per second
}
