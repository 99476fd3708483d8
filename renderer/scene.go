package renderer

import "github.com/pthm-cable/harbor/scene"

// ClearColor returns the sky color for the mode.
func ClearColor(night bool) Color {
	if night {
		return RGB(0.05, 0.05, 0.2)
	}
	return RGB(0.5, 0.8, 1.0)
}

// SceneRenderer draws the harbor back to front.
type SceneRenderer struct {
	layout scene.Layout
	pen    *Pen
}

// NewSceneRenderer creates a renderer for a static layout.
func NewSceneRenderer(layout scene.Layout) *SceneRenderer {
	return &SceneRenderer{layout: layout, pen: NewPen(nil)}
}

// Draw renders one frame of snap onto c. Each call overwrites the whole
// surface; nothing carries over between frames.
func (r *SceneRenderer) Draw(c Canvas, snap scene.Snapshot) {
	p := r.pen
	p.Reset(c)
	l := &r.layout

	p.Clear(ClearColor(snap.Night))

	drawSea(p, snap.Night, snap.ShipX)
	drawRoad(p)
	if snap.Night {
		drawMoon(p, l.Celestial)
	} else {
		drawSun(p, l.Celestial)
	}
	for _, pt := range l.Clouds {
		drawCloud(p, pt, snap.Night)
	}

	for _, b := range l.Buildings {
		drawBuilding(p, b, snap.Night)
	}
	for _, pt := range l.StreetLights {
		drawStreetLight(p, pt, snap.Night)
	}
	drawMosque(p, l.Mosque, snap.Night)
	drawPlayground(p, l.Playground, snap.Night)
	drawBench(p, l.Bench)
	for _, pt := range l.Trees {
		drawTree(p, pt, snap.Night)
	}

	drawSailboat(p, snap.SailboatX, snap.Night)
	drawShip(p, snap.ShipX, snap.Elapsed, snap.Night)
	drawCar(p, snap.CarX, snap.Night, snap.Braking)
	drawBirds(p, snap.BirdsX, snap.BirdsY, snap.Night)
}
