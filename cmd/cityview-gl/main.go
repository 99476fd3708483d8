// Command cityview-gl runs the harbor scene on a plain OpenGL 2.1 context
// through GLFW, without raylib.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pthm-cable/harbor/config"
	"github.com/pthm-cable/harbor/game"
	"github.com/pthm-cable/harbor/renderer"
	"github.com/pthm-cable/harbor/renderer/glcanvas"
	"github.com/pthm-cable/harbor/scene"
	"github.com/pthm-cable/harbor/telemetry"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	noAudio := flag.Bool("no-audio", false, "Ring the terminal bell instead of playing a tone")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	window, err := initWindow(cfg.Window)
	if err != nil {
		slog.Error("failed to open window", "error", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	canvas, err := glcanvas.New()
	if err != nil {
		slog.Error("failed to init gl", "error", err)
		os.Exit(1)
	}
	slog.Info("opengl ready", "version", canvas.Version())

	session := game.NewSession(cfg, game.Options{
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Audio:     !*noAudio,
		Bell:      os.Stderr,
	}, time.Now())
	defer session.Close()

	run(window, canvas, session)
}

// run is the event loop. It sleeps until the next tick or input, and only
// redraws when something changed.
func run(window *glfw.Window, canvas *glcanvas.Canvas, session *game.Session) {
	sceneRenderer := renderer.NewSceneRenderer(scene.DefaultLayout)
	counter := &renderer.Counter{Next: canvas}
	input := NewInput(window)

	dirty := true
	window.SetRefreshCallback(func(*glfw.Window) { dirty = true })
	window.SetSizeCallback(func(_ *glfw.Window, w, h int) {
		session.Camera().Resize(float32(w), float32(h))
		dirty = true
	})

	for !window.ShouldClose() {
		wait := max(session.Until(time.Now()), time.Millisecond)
		glfw.WaitEventsTimeout(wait.Seconds())

		session.BeginFrame()

		for _, r := range input.Chars() {
			if session.KeyDown(r) != scene.EventNone {
				dirty = true
			}
		}
		if input.JustReleased(window, glfw.KeyB) {
			session.KeyUp('b')
			dirty = true
		}
		for _, b := range mouseButtons {
			if input.JustClicked(window, b) {
				x, y := window.GetCursorPos()
				session.Mouse(int(b), float32(x), float32(y))
			}
		}

		if session.Step(time.Now()) {
			dirty = true
		}

		if dirty {
			session.Phase(telemetry.PhaseRender)
			fbW, fbH := window.GetFramebufferSize()
			canvas.SetViewport(fbW, fbH)
			canvas.SetExtent(session.Camera().Extent())

			counter.Reset()
			sceneRenderer.Draw(counter, session.State().Snapshot())
			window.SwapBuffers()

			session.RecordDraw(counter.Commands)
			dirty = false
		}

		session.EndFrame()
	}
}
