package renderer

import "github.com/pthm-cable/harbor/scene"

// drawBuilding draws a facade with a 3x2 grid of windows, lit at night.
func drawBuilding(p *Pen, b scene.Building, night bool) {
	p.Push()
	p.Translate(b.X, b.Y)

	if night {
		p.Quad(0, 0, b.W, b.H, RGB8(100, 80, 50))
	} else {
		p.Quad(0, 0, b.W, b.H, RGB8(200, 180, 140))
	}

	window := RGB(0, 0, 0.3)
	if night {
		window = RGB(1, 0.9, 0.7)
	}
	ww, wh := b.W/5, b.H/7
	for r := 0; r < 3; r++ {
		for c := 0; c < 2; c++ {
			x := ww + float32(c)*(b.W-3*ww)
			y := wh + float32(r)*(b.H/3)
			p.Quad(x, y, x+ww, y+wh, window)
		}
	}

	p.Pop()
}

func drawStreetLight(p *Pen, at scene.Point, night bool) {
	p.Push()
	p.Translate(at.X, at.Y)

	pole := Gray(0.4)
	p.Line(0, 0, 0, 100, 4, pole)
	p.Line(0, 100, 20, 100, 3, pole)

	lamp := Gray(0.4)
	if night {
		lamp = RGB(1, 0.9, 0.5)
	}
	p.Polygon([]Vec2{{20, 100}, {25, 95}, {25, 105}}, lamp)

	p.Pop()
}

func drawMosque(p *Pen, at scene.Point, night bool) {
	p.Push()
	p.Translate(at.X, at.Y)

	if night {
		p.Quad(0, 0, 60, 40, RGB8(150, 150, 150))
	} else {
		p.Quad(0, 0, 60, 40, RGB8(230, 230, 230))
	}

	green := RGB(0, 0.4, 0)
	p.Dome(30, 40, 20, 30, green)

	// Minaret and its cone
	p.Quad(60, 0, 70, 100, RGB8(180, 180, 180))
	p.Triangles([]Vec2{{65, 120}, {60, 100}, {70, 100}}, green)

	p.Pop()
}

// drawPlayground draws a sand lot with a fence, swing set and slide.
func drawPlayground(p *Pen, at scene.Point, night bool) {
	p.Push()
	p.Translate(at.X, at.Y)

	if night {
		p.Quad(-50, 0, 100, 20, RGB8(120, 100, 60))
	} else {
		p.Quad(-50, 0, 100, 20, RGB8(240, 220, 160))
	}

	const fenceHeight = 35
	fence := RGB8(100, 100, 100)
	var posts []Vec2
	for x := float32(-50); x <= 100; x += 15 {
		posts = append(posts, Vec2{x, 20}, Vec2{x, 20 + fenceHeight})
	}
	p.Lines(posts, 2, fence)
	p.Line(-50, 20+fenceHeight, 100, 20+fenceHeight, 2, fence)
	p.Line(-50, 20+fenceHeight/2.0, 100, 20+fenceHeight/2.0, 2, fence)

	frame := Gray(0.5)
	p.Lines([]Vec2{{0, 20}, {0, 60}, {50, 20}, {50, 60}}, 3, frame)
	p.Line(0, 60, 50, 60, 3, frame)
	p.Lines([]Vec2{{15, 60}, {15, 40}, {35, 60}, {35, 40}}, 1, RGB(0, 0, 0))
	p.Polygon([]Vec2{{10, 40}, {40, 40}, {40, 35}, {10, 35}}, RGB8(255, 200, 0))

	p.Quad(80, 20, 85, 50, RGB(0.6, 0.3, 0))
	p.Polygon([]Vec2{{85, 50}, {70, 30}, {75, 30}, {85, 55}}, RGB(0, 0.5, 0.8))

	p.Pop()
}

func drawBench(p *Pen, at scene.Point) {
	p.Push()
	p.Translate(at.X, at.Y)

	p.Quad(-30, 0, 30, 5, RGB8(139, 69, 19))
	p.Lines([]Vec2{{-25, 0}, {-25, -15}, {25, 0}, {25, -15}}, 3, Gray(0.2))

	p.Pop()
}

// drawTree draws a trunk under three overlapping foliage discs.
func drawTree(p *Pen, at scene.Point, night bool) {
	x, y := at.X, at.Y
	p.Quad(x-10, y, x+10, y+40, RGB(0.55, 0.27, 0.07))

	leaves := RGB(0, 0.5, 0)
	if night {
		leaves = RGB(0, 0.2, 0)
	}
	const r = 30
	p.Circle(x-15, y+50, r, 20, leaves)
	p.Circle(x, y+70, r*1.2, 20, leaves)
	p.Circle(x+15, y+50, r, 20, leaves)
}
