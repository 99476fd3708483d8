package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Mode at window end
	Night    bool `csv:"night"`
	Expanded bool `csv:"expanded"`

	// Wraps during window
	CarWraps      int `csv:"car_wraps"`
	ShipWraps     int `csv:"ship_wraps"`
	SailboatWraps int `csv:"sailboat_wraps"`
	BirdWraps     int `csv:"bird_wraps"`

	// Input
	ModeToggles       int `csv:"mode_toggles"`
	ProjectionToggles int `csv:"projection_toggles"`
	BrakePresses      int `csv:"brake_presses"`
	SpeedChanges      int `csv:"speed_changes"`
	Alerts            int `csv:"alerts"`

	CarSpeedMean     float64 `csv:"car_speed_mean"`
	DrawCommandsMean float64 `csv:"draw_commands_mean"`

	// Clock jitter
	TickIntervalMeanMS float64 `csv:"tick_interval_mean_ms"`
	TickIntervalStdMS  float64 `csv:"tick_interval_std_ms"`
	TickIntervalP90MS  float64 `csv:"tick_interval_p90_ms"`
}

// ComputeSeriesStats returns the mean, sample standard deviation and 90th
// percentile of values. Empty input yields zeros.
func ComputeSeriesStats(values []float64) (mean, std, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return mean, std, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Bool("night", s.Night),
		slog.Bool("expanded", s.Expanded),
		slog.Int("car_wraps", s.CarWraps),
		slog.Int("ship_wraps", s.ShipWraps),
		slog.Int("sailboat_wraps", s.SailboatWraps),
		slog.Int("bird_wraps", s.BirdWraps),
		slog.Int("mode_toggles", s.ModeToggles),
		slog.Int("projection_toggles", s.ProjectionToggles),
		slog.Int("brake_presses", s.BrakePresses),
		slog.Int("speed_changes", s.SpeedChanges),
		slog.Int("alerts", s.Alerts),
		slog.Float64("car_speed_mean", s.CarSpeedMean),
		slog.Float64("draw_commands_mean", s.DrawCommandsMean),
		slog.Float64("tick_interval_mean_ms", s.TickIntervalMeanMS),
		slog.Float64("tick_interval_std_ms", s.TickIntervalStdMS),
		slog.Float64("tick_interval_p90_ms", s.TickIntervalP90MS),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"night", s.Night,
		"expanded", s.Expanded,
		"car_wraps", s.CarWraps,
		"ship_wraps", s.ShipWraps,
		"sailboat_wraps", s.SailboatWraps,
		"bird_wraps", s.BirdWraps,
		"mode_toggles", s.ModeToggles,
		"projection_toggles", s.ProjectionToggles,
		"brake_presses", s.BrakePresses,
		"speed_changes", s.SpeedChanges,
		"alerts", s.Alerts,
		"car_speed_mean", s.CarSpeedMean,
		"draw_commands_mean", s.DrawCommandsMean,
		"tick_interval_mean_ms", s.TickIntervalMeanMS,
		"tick_interval_std_ms", s.TickIntervalStdMS,
		"tick_interval_p90_ms", s.TickIntervalP90MS,
	)
}
