package renderer

import (
	"math"

	"github.com/pthm-cable/harbor/scene"
)

// Sea spans the bottom of the primary extent up to the road.
const (
	seaWidth  = 800
	seaTop    = 150
	roadTop   = 200
	celestial = 40 // sun and moon radius
)

// drawSea fills the sea gradient and the wave lines, which drift with the ship.
func drawSea(p *Pen, night bool, shipX float32) {
	if night {
		p.GradientRect(Rect{0, 0, seaWidth, seaTop}, RGB(0, 0.1, 0.3), RGB(0, 0.15, 0.4))
	} else {
		p.GradientRect(Rect{0, 0, seaWidth, seaTop}, RGB(0, 0.4, 0.8), RGB(0, 0.5, 1.0))
	}

	var waves []Vec2
	for i := float32(0); i < seaWidth; i += 50 {
		waves = append(waves,
			Vec2{i, waveHeight(i, shipX)},
			Vec2{i + 30, waveHeight(i+30, shipX)},
		)
	}
	p.Lines(waves, 1, RGB(1, 1, 1))
}

func waveHeight(x, shipX float32) float32 {
	return 50 + float32(math.Sin(float64(x+shipX)*0.1))*5
}

func drawRoad(p *Pen) {
	p.Quad(0, seaTop, seaWidth, roadTop, Gray(0.3))

	var dashes []Vec2
	for i := float32(0); i < seaWidth; i += 80 {
		dashes = append(dashes, Vec2{i, 175}, Vec2{i + 40, 175})
	}
	p.Lines(dashes, 1, RGB(1, 1, 1))
}

func drawSun(p *Pen, at scene.Point) {
	p.Push()
	p.Translate(at.X, at.Y)
	p.Circle(0, 0, celestial, 40, RGB(1, 0.9, 0))
	p.Pop()
}

func drawMoon(p *Pen, at scene.Point) {
	p.Push()
	p.Translate(at.X, at.Y)
	p.Circle(0, 0, celestial, 40, Gray(0.8))
	p.Pop()
}

// Cloud puffs, left to right.
var (
	cloudRadii   = [3]float32{30, 28, 24}
	cloudOffsets = [3]float32{-30, 0, 30}
)

// drawCloud draws three flattened puffs.
func drawCloud(p *Pen, at scene.Point, night bool) {
	col := RGB(1, 1, 1)
	if night {
		col = RGB(0.6, 0.6, 0.7)
	}

	p.Push()
	p.Translate(at.X, at.Y)
	for i := range cloudRadii {
		p.Ellipse(cloudOffsets[i], 0, cloudRadii[i], cloudRadii[i]*0.6, 20, col)
	}
	p.Pop()
}
