package game

import rl "github.com/gen2brain/raylib-go/raylib"

var mouseButtons = []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonRight, rl.MouseButtonMiddle}

// handleInput drains typed characters and forwards them to the scene.
func (g *Game) handleInput() {
	g.handleResize()

	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		g.handleChar(rune(r))
	}

	// Only the brake has a release action, and raylib reports releases by key
	if rl.IsKeyReleased(rl.KeyB) {
		g.KeyUp('b')
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	mouse := rl.GetMousePosition()
	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			g.Mouse(int(b), mouse.X, mouse.Y)
		}
	}
}

// handleChar routes one typed character. 'h' belongs to the host.
func (g *Game) handleChar(r rune) {
	if r == 'h' || r == 'H' {
		g.hud.Toggle()
		return
	}
	g.KeyDown(r)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.cam.Resize(w, h)
	g.perfPanel.SetPosition(int32(w)-240, 10)
}
