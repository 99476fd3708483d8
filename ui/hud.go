package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harbor/systems"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Night    bool
	Expanded bool
	Braking  bool
	Tick     int64
	Elapsed  time.Duration

	CarSpeed float32
	MinSpeed float32
	MaxSpeed float32

	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
}

// ModeLabel returns the display name of the lighting mode.
func (d HUDData) ModeLabel() string {
	if d.Night {
		return "Night"
	}
	return "Day"
}

// ProjectionLabel returns the display name of the active extent.
func (d HUDData) ProjectionLabel() string {
	if d.Expanded {
		return "Wide"
	}
	return "Normal"
}

// StatusText returns the status bar line.
func (d HUDData) StatusText() string {
	brake := "off"
	if d.Braking {
		brake = "ON"
	}
	return fmt.Sprintf("%s | View: %s | Brake: %s | Tick: %d | %s | FPS: %d",
		d.ModeLabel(), d.ProjectionLabel(), brake, d.Tick, d.Elapsed.Truncate(time.Second), d.FPS)
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	visible  bool
}

// NewHUD creates a new HUD renderer.
func NewHUD(visible bool) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		visible:  visible,
	}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// IsVisible returns whether the HUD is shown.
func (h *HUD) IsVisible() bool {
	return h.visible
}

// Draw renders the status bar along the bottom edge and the speed gauge
// above it. The widgets are display-only.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	t := h.renderer.Theme

	barH := float32(t.LineHeight + 8)
	w := float32(data.ScreenWidth)
	y := float32(data.ScreenHeight) - barH
	gui.StatusBar(rl.Rectangle{X: 0, Y: y, Width: w, Height: barH}, data.StatusText())

	gaugeW := float32(200)
	gui.ProgressBar(
		rl.Rectangle{X: 70, Y: y - barH, Width: gaugeW, Height: float32(t.BarHeight)},
		"Speed",
		fmt.Sprintf("%.0f", data.CarSpeed),
		data.CarSpeed, data.MinSpeed, data.MaxSpeed,
	)
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseTimes map[string]time.Duration
	Total      time.Duration
	Registry   *systems.SystemRegistry
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData, names []string) {
	t := p.renderer.Theme
	height := int32(len(names)+2)*t.LineHeight + t.Padding*2
	p.renderer.DrawPanel(p.x, p.y, 230, height)

	x := p.x + t.Padding
	y := p.renderer.DrawSectionHeader(x, p.y+t.Padding, "Step Timing")
	y = p.renderer.DrawLabelValue(x, y, "Total", data.Total.Round(time.Microsecond).String())

	for _, name := range names {
		avg := data.PhaseTimes[name]
		pct := float64(0)
		if data.Total > 0 {
			pct = float64(avg) / float64(data.Total) * 100
		}

		// Use registry to get display name if available
		displayName := name
		if data.Registry != nil {
			displayName = data.Registry.GetName(name)
		}

		y = p.renderer.DrawLabelValue(x, y, displayName,
			fmt.Sprintf("%8s %5.1f%%", avg.Round(time.Microsecond), pct))
	}
}
