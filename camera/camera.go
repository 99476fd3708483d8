// Package camera provides the orthographic projection from scene coordinates
// to window pixels.
package camera

import "github.com/pthm-cable/harbor/config"

// Extent is an orthographic view volume in world units. World y points up.
type Extent struct {
	Left, Right, Bottom, Top float32
}

// ExtentFromConfig converts a config extent.
func ExtentFromConfig(e config.ExtentConfig) Extent {
	return Extent{Left: e.Left, Right: e.Right, Bottom: e.Bottom, Top: e.Top}
}

// Width returns the horizontal span of the extent.
func (e Extent) Width() float32 { return e.Right - e.Left }

// Height returns the vertical span of the extent.
func (e Extent) Height() float32 { return e.Top - e.Bottom }

// Ortho maps an extent onto a viewport whose y axis points down.
// The extent is stretched to fill the viewport, like a fixed glOrtho on a
// window of a different aspect.
type Ortho struct {
	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	primary, expanded Extent
	wide              bool
}

// New creates a projection showing the primary extent.
func New(viewportW, viewportH float32, primary, expanded Extent) *Ortho {
	return &Ortho{
		ViewportW: viewportW,
		ViewportH: viewportH,
		primary:   primary,
		expanded:  expanded,
	}
}

// FromConfig creates a projection for the configured window and extents.
func FromConfig(cfg *config.Config) *Ortho {
	return New(
		cfg.Derived.WindowW32,
		cfg.Derived.WindowH32,
		ExtentFromConfig(cfg.Projection.Primary),
		ExtentFromConfig(cfg.Projection.Expanded),
	)
}

// Extent returns the active extent.
func (o *Ortho) Extent() Extent {
	if o.wide {
		return o.expanded
	}
	return o.primary
}

// Expanded reports whether the expanded extent is active.
func (o *Ortho) Expanded() bool {
	return o.wide
}

// SetExpanded selects the expanded extent when wide is true.
func (o *Ortho) SetExpanded(wide bool) {
	o.wide = wide
}

// Toggle switches between the two extents.
func (o *Ortho) Toggle() {
	o.wide = !o.wide
}

// Scale returns pixels per world unit along each axis.
func (o *Ortho) Scale() (sx, sy float32) {
	e := o.Extent()
	return o.ViewportW / e.Width(), o.ViewportH / e.Height()
}

// WorldToScreen converts world coordinates to screen coordinates.
func (o *Ortho) WorldToScreen(wx, wy float32) (sx, sy float32) {
	e := o.Extent()
	sx = (wx - e.Left) / e.Width() * o.ViewportW
	sy = (e.Top - wy) / e.Height() * o.ViewportH
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (o *Ortho) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	e := o.Extent()
	wx = e.Left + sx/o.ViewportW*e.Width()
	wy = e.Top - sy/o.ViewportH*e.Height()
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with the given radius could
// be visible on screen (conservative check for culling).
func (o *Ortho) IsVisible(wx, wy, radius float32) bool {
	e := o.Extent()
	return wx+radius >= e.Left && wx-radius <= e.Right &&
		wy+radius >= e.Bottom && wy-radius <= e.Top
}

// Resize updates viewport dimensions. The extents are unchanged.
func (o *Ortho) Resize(viewportW, viewportH float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return
	}
	o.ViewportW = viewportW
	o.ViewportH = viewportH
}

// Reset returns to the primary extent.
func (o *Ortho) Reset() {
	o.wide = false
}
