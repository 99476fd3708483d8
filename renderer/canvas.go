package renderer

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 returns an opaque color from byte components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// Gray returns an opaque gray of the given level.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// Bytes returns the color as 8-bit components.
func (c Color) Bytes() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D point in world units.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle with (X0, Y0) the bottom-left corner.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// Canvas is an immediate-mode 2D drawing surface in world coordinates
// (y up). Implementations must not retain the point slices they are given.
type Canvas interface {
	// Clear fills the whole surface.
	Clear(c Color)
	// Polygon fills a convex polygon.
	Polygon(pts []Vec2, c Color)
	// GradientRect fills a rectangle blending vertically from bottom to top.
	GradientRect(r Rect, bottom, top Color)
	// Triangles fills independent triangles, three points each.
	Triangles(pts []Vec2, c Color)
	// TriangleFan fills a fan around pts[0].
	TriangleFan(pts []Vec2, c Color)
	// Lines draws independent segments, two points each, width in pixels.
	Lines(pts []Vec2, width float32, c Color)
}
