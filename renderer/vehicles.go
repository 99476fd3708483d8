package renderer

import "math"

var shipHull = []Vec2{{-100, 0}, {-90, 15}, {-60, 25}, {80, 25}, {100, 15}, {100, 0}}

// drawSailboat draws the distant sailboat bobbing on its own wave.
func drawSailboat(p *Pen, x float32, night bool) {
	bob := float32(math.Sin(float64(x)*0.05)) * 3

	p.Push()
	p.Translate(x, 120+bob)
	p.Scale(0.6, 0.6)

	p.Polygon([]Vec2{{-20, 0}, {20, 0}, {15, 10}, {-15, 10}}, RGB(0.2, 0.1, 0))
	p.Line(0, 10, 0, 60, 2, RGB(0, 0, 0))

	sail := RGB(1, 1, 1)
	if night {
		sail = RGB(0.6, 0.6, 0.7)
	}
	p.Triangles([]Vec2{{0, 60}, {0, 10}, {40, 20}}, sail)

	p.Pop()
}

// drawShip draws the ship with a mirrored hull reflection below the waterline
// and a smoke puff that bobs with elapsed seconds.
func drawShip(p *Pen, x float32, elapsed float64, night bool) {
	bob := float32(math.Sin(float64(x)*0.015)) * 5

	p.Push()
	p.Translate(x, 65+bob)
	p.Scale(0.7, 0.7)

	p.Push()
	p.Scale(1, -1)
	p.Translate(0, -25)
	p.Polygon(shipHull, RGB(0.2, 0.1, 0))
	p.Pop()

	p.Polygon(shipHull, RGB(0.4, 0.2, 0))
	p.Polygon([]Vec2{{-60, 25}, {80, 25}, {60, 45}, {-40, 45}}, Gray(0.8))
	p.Quad(-25, 45, 45, 70, RGB(1, 1, 1))

	window := RGB(0, 0.4, 0.8)
	if night {
		window = RGB(1, 1, 0.8)
	}
	for i := float32(-20); i <= 40; i += 15 {
		p.Quad(i, 55, i+10, 65, window)
	}

	p.Quad(20, 70, 30, 95, RGB(0.8, 0.1, 0.1))

	smokeY := 95 + float32(math.Sin(elapsed*2))*5
	p.Circle(25, smokeY, 10, 20, Gray(0.9))

	p.Pop()
}

// drawCar draws the car. Headlight beams show only at night and the brake
// light only while braking.
func drawCar(p *Pen, x float32, night, braking bool) {
	p.Push()
	p.Translate(x, 0)

	p.Polygon([]Vec2{{45, 200}, {125, 200}, {135, 215}, {125, 230}, {55, 230}, {45, 215}}, RGB(1, 0, 0))

	if night {
		p.Triangles([]Vec2{
			{135, 208}, {180, 215}, {180, 195},
			{135, 205}, {180, 212}, {180, 192},
		}, Color{R: 1, G: 1, B: 0.8, A: 0.8})
		p.Quad(135, 206, 137, 214, RGB(1, 0.9, 0.5))
	}

	if braking {
		p.Polygon([]Vec2{{45, 205}, {40, 205}, {40, 212}, {45, 212}}, RGB(1, 0, 0))
	}

	p.Polygon([]Vec2{{60, 230}, {120, 230}, {110, 245}, {70, 245}}, RGB(0, 0, 1))
	p.Polygon([]Vec2{{120, 230}, {110, 245}, {70, 245}, {60, 230}}, RGB(0.7, 0.8, 1))

	black := RGB(0, 0, 0)
	p.Disc(115, 195, 8, 0.1, black)
	p.Disc(60, 195, 8, 0.1, black)

	p.Pop()
}

// Two "V" shapes, one segment per wing.
var birdWings = []Vec2{
	{0, 0}, {10, 10}, {10, 10}, {20, 0},
	{30, 5}, {40, 15}, {40, 15}, {50, 5},
}

// drawBirds draws the flock by day. Birds are hidden at night.
func drawBirds(p *Pen, x, y float32, night bool) {
	if night {
		return
	}
	p.Push()
	p.Translate(x, y)
	p.Lines(birdWings, 2, RGB(0, 0, 0))
	p.Pop()
}
