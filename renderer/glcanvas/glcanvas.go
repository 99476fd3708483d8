// Package glcanvas draws the scene with fixed-function OpenGL 2.1 calls.
// A GL context must be current on the calling thread.
package glcanvas

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/pthm-cable/harbor/camera"
	"github.com/pthm-cable/harbor/renderer"
)

// Canvas issues glBegin/glEnd batches in world coordinates.
type Canvas struct{}

// New loads the GL function pointers for the current context.
func New() (*Canvas, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Canvas{}, nil
}

// Version returns the GL version string of the current context.
func (c *Canvas) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// SetViewport sets the framebuffer area to draw into.
func (c *Canvas) SetViewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

// SetExtent loads an orthographic projection for e.
func (c *Canvas) SetExtent(e camera.Extent) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(float64(e.Left), float64(e.Right), float64(e.Bottom), float64(e.Top), -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

func color(col renderer.Color) {
	gl.Color4f(col.R, col.G, col.B, col.A)
}

func batch(mode uint32, pts []renderer.Vec2, col renderer.Color) {
	color(col)
	gl.Begin(mode)
	for _, p := range pts {
		gl.Vertex2f(p.X, p.Y)
	}
	gl.End()
}

func (c *Canvas) Clear(col renderer.Color) {
	gl.ClearColor(col.R, col.G, col.B, col.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Canvas) Polygon(pts []renderer.Vec2, col renderer.Color) {
	batch(gl.POLYGON, pts, col)
}

func (c *Canvas) Triangles(pts []renderer.Vec2, col renderer.Color) {
	batch(gl.TRIANGLES, pts, col)
}

func (c *Canvas) TriangleFan(pts []renderer.Vec2, col renderer.Color) {
	batch(gl.TRIANGLE_FAN, pts, col)
}

func (c *Canvas) Lines(pts []renderer.Vec2, width float32, col renderer.Color) {
	gl.LineWidth(width)
	batch(gl.LINES, pts, col)
}

func (c *Canvas) GradientRect(r renderer.Rect, bottom, top renderer.Color) {
	gl.Begin(gl.POLYGON)
	color(bottom)
	gl.Vertex2f(r.X0, r.Y0)
	gl.Vertex2f(r.X1, r.Y0)
	color(top)
	gl.Vertex2f(r.X1, r.Y1)
	gl.Vertex2f(r.X0, r.Y1)
	gl.End()
}
