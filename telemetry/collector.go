package telemetry

import (
	"time"

	"github.com/pthm-cable/harbor/components"
	"github.com/pthm-cable/harbor/scene"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	tickSec             float64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	wraps        [components.NumKinds]int
	modeToggles  int
	projToggles  int
	brakePresses int
	speedChanges int
	alerts       int

	carSpeeds     []float64
	drawCommands  []float64
	tickIntervals []float64 // milliseconds
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in scene seconds
// tickSec: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, tickSec float64) *Collector {
	ticksPerWindow := int64(windowDurationSec / tickSec)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		tickSec:             tickSec,
	}
}

// RecordTick records the outcome of one tick.
func (c *Collector) RecordTick(res scene.TickResult, carSpeed float32, interval time.Duration) {
	for k := components.Kind(0); k < components.NumKinds; k++ {
		if res.Wrapped.Has(k) {
			c.wraps[k]++
		}
	}
	c.carSpeeds = append(c.carSpeeds, float64(carSpeed))
	if interval > 0 {
		c.tickIntervals = append(c.tickIntervals, float64(interval)/float64(time.Millisecond))
	}
}

// RecordEvent counts a key event.
func (c *Collector) RecordEvent(ev scene.Event) {
	switch ev {
	case scene.EventModeChanged:
		c.modeToggles++
	case scene.EventProjectionChanged:
		c.projToggles++
	case scene.EventBrakeOn:
		c.brakePresses++
	case scene.EventSpeedChanged:
		c.speedChanges++
	case scene.EventAlert:
		c.alerts++
	}
}

// RecordFrame records the number of canvas commands in one rendered frame.
func (c *Collector) RecordFrame(commands int) {
	c.drawCommands = append(c.drawCommands, float64(commands))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int64, s *scene.State) WindowStats {
	speedMean, _, _ := ComputeSeriesStats(c.carSpeeds)
	drawMean, _, _ := ComputeSeriesStats(c.drawCommands)
	intervalMean, intervalStd, intervalP90 := ComputeSeriesStats(c.tickIntervals)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.tickSec,

		Night:    s.Night(),
		Expanded: s.Expanded(),

		CarWraps:      c.wraps[components.KindCar],
		ShipWraps:     c.wraps[components.KindShip],
		SailboatWraps: c.wraps[components.KindSailboat],
		BirdWraps:     c.wraps[components.KindBirds],

		ModeToggles:       c.modeToggles,
		ProjectionToggles: c.projToggles,
		BrakePresses:      c.brakePresses,
		SpeedChanges:      c.speedChanges,
		Alerts:            c.alerts,

		CarSpeedMean:     speedMean,
		DrawCommandsMean: drawMean,

		TickIntervalMeanMS: intervalMean,
		TickIntervalStdMS:  intervalStd,
		TickIntervalP90MS:  intervalP90,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.wraps = [components.NumKinds]int{}
	c.modeToggles = 0
	c.projToggles = 0
	c.brakePresses = 0
	c.speedChanges = 0
	c.alerts = 0
	c.carSpeeds = c.carSpeeds[:0]
	c.drawCommands = c.drawCommands[:0]
	c.tickIntervals = c.tickIntervals[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
