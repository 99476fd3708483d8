package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBinding describes one key and what it does.
type KeyBinding struct {
	Key    string
	Action string
	Held   bool // effect lasts while the key is down
}

// DefaultBindings lists the scene controls in display order.
var DefaultBindings = []KeyBinding{
	{Key: "+", Action: "Speed up"},
	{Key: "-", Action: "Slow down"},
	{Key: "B", Action: "Brake", Held: true},
	{Key: "N", Action: "Day / night"},
	{Key: "O", Action: "Wide view"},
	{Key: "S", Action: "Beep"},
	{Key: "H", Action: "HUD"},
}

// LegendText returns the bindings as a single line.
func LegendText(bindings []KeyBinding) string {
	text := ""
	for i, b := range bindings {
		if i > 0 {
			text += "  "
		}
		text += fmt.Sprintf("[%s] %s", b.Key, b.Action)
	}
	return text
}

// ControlsPanel renders the key legend in the top-left corner.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	bindings []KeyBinding
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32, bindings []KeyBinding) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		bindings: bindings,
	}
}

// Height returns the panel height in pixels.
func (c *ControlsPanel) Height() int32 {
	t := c.renderer.Theme
	return int32(len(c.bindings)+1)*t.LineHeight + t.Padding*2 + 4
}

// Draw renders the legend. active reports, per binding index, whether the
// setting it controls is currently on.
func (c *ControlsPanel) Draw(active func(i int) bool) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	r.DrawPanel(c.x, c.y, c.width, c.Height())

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	for i, b := range c.bindings {
		on := active != nil && active(i)
		c.drawBinding(c.x+padding, y, b, on, c.width-padding*2)
		y += lineHeight
	}

	return y
}

// drawBinding draws a single legend line.
func (c *ControlsPanel) drawBinding(x, y int32, b KeyBinding, on bool, width int32) {
	r := c.renderer

	x += r.DrawIndicator(x, y, on)

	nameColor := r.Theme.LabelColor
	if on {
		nameColor = rl.White
	}
	rl.DrawText(b.Action, x, y, r.Theme.FontSize, nameColor)

	keyText := fmt.Sprintf("[%s]", b.Key)
	if b.Held {
		keyText = fmt.Sprintf("hold [%s]", b.Key)
	}
	keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
	rl.DrawText(keyText, x+width-14-keyWidth, y, r.Theme.FontSize, r.Theme.KeyColor)
}
