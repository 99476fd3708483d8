// Package game hosts the harbor scene: it drives the fixed-period clock,
// routes input to the scene, and feeds telemetry.
package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/harbor/audio"
	"github.com/pthm-cable/harbor/camera"
	"github.com/pthm-cable/harbor/clock"
	"github.com/pthm-cable/harbor/config"
	"github.com/pthm-cable/harbor/scene"
	"github.com/pthm-cable/harbor/telemetry"
)

// Session is the window-system independent part of a host. Every host
// calls it from a single goroutine.
type Session struct {
	cfg   *config.Config
	state *scene.State
	sched *clock.Scheduler
	cam   *camera.Ortho
	alert *audio.Alert

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// Called after each stats window flush
	statsCallback func(telemetry.WindowStats)
}

// NewSession creates the scene and its clock. The clock starts at start.
func NewSession(cfg *config.Config, opts Options, start time.Time) *Session {
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	s := &Session{
		cfg:           cfg,
		state:         scene.NewState(cfg),
		sched:         clock.NewScheduler(cfg.Derived.TickDuration, start),
		cam:           camera.FromConfig(cfg),
		alert:         audio.NewAlert(cfg.Audio, opts.Bell),
		collector:     telemetry.NewCollector(statsWindow, cfg.Derived.TickSeconds),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
	}
	s.state.SetPhaseHook(s.perfCollector.StartPhase)

	if opts.Audio && cfg.Audio.Enabled {
		if err := s.alert.Open(); err != nil {
			slog.Warn("audio unavailable, using terminal bell", "error", err)
		}
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			s.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
			slog.Info("output directory initialized", "path", opts.OutputDir)
		}
	}

	return s
}

// SetStatsCallback installs a callback run after each stats window.
func (s *Session) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// BeginFrame starts timing one host iteration.
func (s *Session) BeginFrame() {
	s.perfCollector.StartTick()
}

// Phase marks the start of a timed phase within the current frame.
func (s *Session) Phase(name string) {
	s.perfCollector.StartPhase(name)
}

// Step runs one scene tick if the clock is due at now. It reports whether
// a tick ran, in which case the host should redraw.
func (s *Session) Step(now time.Time) bool {
	if !s.sched.Due(now) {
		return false
	}
	s.advance(s.sched.Elapsed(now).Seconds(), s.sched.LastInterval())
	return true
}

// StepFixed runs one tick without consulting the wall clock. Elapsed time
// is the tick count times the period, which keeps headless runs
// reproducible.
func (s *Session) StepFixed() {
	period := s.sched.Period()
	elapsed := time.Duration(s.state.TickCount()+1) * period
	s.advance(elapsed.Seconds(), period)
}

func (s *Session) advance(elapsed float64, interval time.Duration) {
	res := s.state.Tick(elapsed)
	s.collector.RecordTick(res, s.state.CarSpeed(), interval)
}

// RecordDraw notes the draw commands issued for one frame.
func (s *Session) RecordDraw(commands int) {
	s.collector.RecordFrame(commands)
	s.perfCollector.RecordFrame()
}

// EndFrame flushes telemetry if a window has closed and finishes timing.
func (s *Session) EndFrame() {
	s.Phase(telemetry.PhaseTelemetry)
	s.flushTelemetry()
	s.perfCollector.EndTick()
}

// KeyDown applies a typed character to the scene and runs its side effects.
func (s *Session) KeyDown(r rune) scene.Event {
	ev := s.state.HandleKeyDown(r)
	s.dispatch(ev, r)
	return ev
}

// KeyUp applies a released character.
func (s *Session) KeyUp(r rune) scene.Event {
	ev := s.state.HandleKeyUp(r)
	s.dispatch(ev, r)
	return ev
}

// Mouse forwards a button press at screen coordinates.
func (s *Session) Mouse(button int, screenX, screenY float32) {
	wx, wy := s.cam.ScreenToWorld(screenX, screenY)
	s.state.HandleMouse(button, wx, wy)
}

// dispatch performs the host side of an event.
func (s *Session) dispatch(ev scene.Event, key rune) {
	switch ev {
	case scene.EventNone:
		return
	case scene.EventProjectionChanged:
		s.cam.SetExpanded(s.state.Expanded())
		slog.Info("projection", "expanded", s.state.Expanded())
	case scene.EventModeChanged:
		slog.Info("mode", "night", s.state.Night())
	case scene.EventAlert:
		s.alert.Beep()
	}

	s.collector.RecordEvent(ev)
	if s.outputManager != nil {
		row := telemetry.NewInputEvent(s.state, ev, key, s.state.Snapshot().Elapsed)
		if err := s.outputManager.WriteEvent(row); err != nil {
			slog.Error("failed to write event", "error", err)
		}
	}
}

// flushTelemetry emits a stats window once enough ticks have passed.
func (s *Session) flushTelemetry() {
	tick := s.state.TickCount()
	if !s.collector.ShouldFlush(tick) {
		return
	}

	stats := s.collector.Flush(tick, s.state)
	perfStats := s.perfCollector.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Until returns the time left before the next tick is due.
func (s *Session) Until(now time.Time) time.Duration {
	return s.sched.Until(now)
}

// State returns the scene state.
func (s *Session) State() *scene.State {
	return s.state
}

// Camera returns the projection shared by drawing and mouse input.
func (s *Session) Camera() *camera.Ortho {
	return s.cam
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// PerfStats returns the current timing window.
func (s *Session) PerfStats() telemetry.PerfStats {
	return s.perfCollector.Stats()
}

// Tick returns the number of scene ticks run.
func (s *Session) Tick() int64 {
	return s.state.TickCount()
}

// Close flushes and closes any output files.
func (s *Session) Close() {
	if s.outputManager != nil {
		if err := s.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
		s.outputManager = nil
	}
}
