package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/harbor/camera"
)

// RaylibCanvas draws onto the current raylib frame, projecting world
// coordinates through an orthographic camera.
type RaylibCanvas struct {
	cam *camera.Ortho
	buf []rl.Vector2
}

// NewRaylibCanvas creates a canvas projecting through cam.
func NewRaylibCanvas(cam *camera.Ortho) *RaylibCanvas {
	return &RaylibCanvas{cam: cam}
}

func toRL(c Color) rl.Color {
	r, g, b, a := c.Bytes()
	return rl.NewColor(r, g, b, a)
}

func (c *RaylibCanvas) project(pts []Vec2) []rl.Vector2 {
	c.buf = c.buf[:0]
	for _, p := range pts {
		sx, sy := c.cam.WorldToScreen(p.X, p.Y)
		c.buf = append(c.buf, rl.NewVector2(sx, sy))
	}
	return c.buf
}

// triangle draws one filled triangle. raylib only fills triangles wound
// counter-clockwise on screen, and the y flip reverses world winding.
func triangle(a, b, cc rl.Vector2, col rl.Color) {
	cross := (b.X-a.X)*(cc.Y-a.Y) - (b.Y-a.Y)*(cc.X-a.X)
	if cross > 0 {
		b, cc = cc, b
	}
	rl.DrawTriangle(a, b, cc, col)
}

func (c *RaylibCanvas) Clear(col Color) {
	rl.ClearBackground(toRL(col))
}

func (c *RaylibCanvas) Polygon(pts []Vec2, col Color) {
	c.fan(c.project(pts), toRL(col))
}

func (c *RaylibCanvas) TriangleFan(pts []Vec2, col Color) {
	c.fan(c.project(pts), toRL(col))
}

func (c *RaylibCanvas) fan(v []rl.Vector2, col rl.Color) {
	for i := 1; i+1 < len(v); i++ {
		triangle(v[0], v[i], v[i+1], col)
	}
}

func (c *RaylibCanvas) Triangles(pts []Vec2, col Color) {
	v := c.project(pts)
	rc := toRL(col)
	for i := 0; i+2 < len(v); i += 3 {
		triangle(v[i], v[i+1], v[i+2], rc)
	}
}

func (c *RaylibCanvas) Lines(pts []Vec2, width float32, col Color) {
	v := c.project(pts)
	rc := toRL(col)
	for i := 0; i+1 < len(v); i += 2 {
		rl.DrawLineEx(v[i], v[i+1], width, rc)
	}
}

func (c *RaylibCanvas) GradientRect(r Rect, bottom, top Color) {
	x0, y0 := c.cam.WorldToScreen(r.X0, r.Y1)
	x1, y1 := c.cam.WorldToScreen(r.X1, r.Y0)
	rl.DrawRectangleGradientV(
		int32(x0), int32(y0),
		int32(x1-x0+0.5), int32(y1-y0+0.5),
		toRL(top), toRL(bottom),
	)
}
