package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harbor/config"
	"github.com/pthm-cable/harbor/renderer"
	"github.com/pthm-cable/harbor/scene"
	"github.com/pthm-cable/harbor/systems"
	"github.com/pthm-cable/harbor/telemetry"
	"github.com/pthm-cable/harbor/ui"
)

// Game is the raylib host for the scene.
type Game struct {
	*Session

	headless       bool
	stepsPerUpdate int

	sceneRenderer *renderer.SceneRenderer
	canvas        *renderer.RaylibCanvas
	counter       *renderer.Counter

	hud           *ui.HUD
	perfPanel     *ui.PerfPanel
	controlsPanel *ui.ControlsPanel
	registry      *systems.SystemRegistry

	screenWidth  float32
	screenHeight float32
}

// NewGameWithOptions creates a game with the global config. Graphics
// resources are only touched when not headless, so the window must already
// be open in that case.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		Session:        NewSession(cfg, opts, time.Now()),
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		sceneRenderer:  renderer.NewSceneRenderer(scene.DefaultLayout),
		counter:        &renderer.Counter{},
		registry:       systems.NewSystemRegistry(),
		screenWidth:    cfg.Derived.WindowW32,
		screenHeight:   cfg.Derived.WindowH32,
	}

	if !opts.Headless {
		g.canvas = renderer.NewRaylibCanvas(g.cam)
		g.counter.Next = g.canvas
		g.hud = ui.NewHUD(cfg.HUD.Visible)
		g.perfPanel = ui.NewPerfPanel(int32(g.screenWidth)-240, 10)
		g.controlsPanel = ui.NewControlsPanel(10, 10, 200, ui.DefaultBindings)
	}

	slog.Info("scene ready",
		"tick_ms", cfg.Clock.TickMS,
		"entities", len(cfg.Entities),
		"headless", opts.Headless,
	)

	return g
}

// Update polls input and runs a tick when the clock is due.
func (g *Game) Update() {
	g.BeginFrame()
	g.handleInput()
	g.Step(time.Now())
}

// UpdateHeadless runs StepsPerUpdate ticks back to back without a window.
// Each tick is still drawn into a counting canvas so draw statistics match
// a windowed run.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.BeginFrame()
		g.StepFixed()

		g.Phase(telemetry.PhaseRender)
		g.counter.Reset()
		g.sceneRenderer.Draw(g.counter, g.state.Snapshot())
		g.RecordDraw(g.counter.Commands)

		g.EndFrame()
	}
}

// Draw renders the scene and the overlays, then closes the frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.Phase(telemetry.PhaseRender)
	g.counter.Reset()
	g.sceneRenderer.Draw(g.counter, g.state.Snapshot())

	g.Phase(telemetry.PhaseHUD)
	g.drawOverlays()

	rl.EndDrawing()

	g.RecordDraw(g.counter.Commands)
	g.EndFrame()
}

// drawOverlays draws the HUD, key legend and timing panel when enabled.
func (g *Game) drawOverlays() {
	if !g.hud.IsVisible() {
		return
	}
	car := g.cfg.Car
	g.hud.Draw(ui.HUDData{
		Night:        g.state.Night(),
		Expanded:     g.state.Expanded(),
		Braking:      g.state.Braking(),
		Tick:         g.Tick(),
		Elapsed:      time.Duration(g.state.Snapshot().ElapsedMS()) * time.Millisecond,
		CarSpeed:     g.state.CarSpeed(),
		MinSpeed:     car.MinSpeed,
		MaxSpeed:     car.MaxSpeed,
		FPS:          rl.GetFPS(),
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})

	g.controlsPanel.Draw(g.bindingActive)

	perf := g.PerfStats()
	g.perfPanel.Draw(ui.PerfPanelData{
		PhaseTimes: perf.PhaseAvg,
		Total:      perf.AvgTickDuration,
		Registry:   g.registry,
	}, telemetry.Phases)
}

// bindingActive lights the legend entries whose setting is on.
func (g *Game) bindingActive(i int) bool {
	switch ui.DefaultBindings[i].Key {
	case "B":
		return g.state.Braking()
	case "N":
		return g.state.Night()
	case "O":
		return g.state.Expanded()
	case "H":
		return g.hud.IsVisible()
	}
	return false
}

// Unload releases all resources.
func (g *Game) Unload() {
	g.Close()
}
