package game

import "io"

// Options configures a session.
type Options struct {
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Audio enables the tone path for the alert key. Without it, or when
	// the device cannot be opened, the alert rings Bell instead.
	Audio bool
	Bell  io.Writer
}
