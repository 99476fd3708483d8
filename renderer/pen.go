package renderer

import "math"

// affine is a scale followed by a translation: p' = (sx*x + tx, sy*y + ty).
type affine struct {
	sx, sy float32
	tx, ty float32
}

var identity = affine{sx: 1, sy: 1}

func (a affine) apply(p Vec2) Vec2 {
	return Vec2{X: a.sx*p.X + a.tx, Y: a.sy*p.Y + a.ty}
}

// Pen draws shapes in local coordinates through a matrix stack, forwarding
// transformed geometry to a Canvas. A Pen is itself a Canvas.
type Pen struct {
	target Canvas
	cur    affine
	stack  []affine
	buf    []Vec2
}

// NewPen creates a pen drawing onto target with an identity transform.
func NewPen(target Canvas) *Pen {
	return &Pen{target: target, cur: identity}
}

// Reset retargets the pen and clears the matrix stack.
func (p *Pen) Reset(target Canvas) {
	p.target = target
	p.cur = identity
	p.stack = p.stack[:0]
}

// Depth returns the number of pushed transforms.
func (p *Pen) Depth() int {
	return len(p.stack)
}

// Push saves the current transform.
func (p *Pen) Push() {
	p.stack = append(p.stack, p.cur)
}

// Pop restores the most recently pushed transform.
func (p *Pen) Pop() {
	n := len(p.stack)
	if n == 0 {
		p.cur = identity
		return
	}
	p.cur = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

// Translate moves the local origin by (dx, dy) in local units.
func (p *Pen) Translate(dx, dy float32) {
	p.cur.tx += p.cur.sx * dx
	p.cur.ty += p.cur.sy * dy
}

// Scale scales subsequent local coordinates.
func (p *Pen) Scale(kx, ky float32) {
	p.cur.sx *= kx
	p.cur.sy *= ky
}

// Transform maps a local point to target coordinates.
func (p *Pen) Transform(v Vec2) Vec2 {
	return p.cur.apply(v)
}

func (p *Pen) project(pts []Vec2) []Vec2 {
	p.buf = p.buf[:0]
	for _, v := range pts {
		p.buf = append(p.buf, p.cur.apply(v))
	}
	return p.buf
}

func (p *Pen) Clear(c Color) {
	p.target.Clear(c)
}

func (p *Pen) Polygon(pts []Vec2, c Color) {
	p.target.Polygon(p.project(pts), c)
}

func (p *Pen) GradientRect(r Rect, bottom, top Color) {
	a := p.cur.apply(Vec2{r.X0, r.Y0})
	b := p.cur.apply(Vec2{r.X1, r.Y1})
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	// A mirrored transform puts the bottom edge on top
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
		bottom, top = top, bottom
	}
	p.target.GradientRect(Rect{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y}, bottom, top)
}

func (p *Pen) Triangles(pts []Vec2, c Color) {
	p.target.Triangles(p.project(pts), c)
}

func (p *Pen) TriangleFan(pts []Vec2, c Color) {
	p.target.TriangleFan(p.project(pts), c)
}

func (p *Pen) Lines(pts []Vec2, width float32, c Color) {
	p.target.Lines(p.project(pts), width, c)
}

// Quad fills the axis-aligned rectangle spanned by two corners.
func (p *Pen) Quad(x0, y0, x1, y1 float32, c Color) {
	p.Polygon([]Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, c)
}

// Line draws a single segment.
func (p *Pen) Line(x0, y0, x1, y1, width float32, c Color) {
	p.Lines([]Vec2{{x0, y0}, {x1, y1}}, width, c)
}

// Ellipse fills a fan of segments+1 rim points around (cx, cy), closing the rim.
func (p *Pen) Ellipse(cx, cy, rx, ry float32, segments int, c Color) {
	p.arcFan(cx, cy, rx, ry, segments, 2*math.Pi, c)
}

// Circle fills a full circle.
func (p *Pen) Circle(cx, cy, r float32, segments int, c Color) {
	p.arcFan(cx, cy, r, r, segments, 2*math.Pi, c)
}

// Dome fills the upper half of a circle.
func (p *Pen) Dome(cx, cy, r float32, segments int, c Color) {
	p.arcFan(cx, cy, r, r, segments, math.Pi, c)
}

func (p *Pen) arcFan(cx, cy, rx, ry float32, segments int, sweep float64, c Color) {
	pts := make([]Vec2, 0, segments+2)
	pts = append(pts, Vec2{cx, cy})
	for i := 0; i <= segments; i++ {
		ang := float64(i) * sweep / float64(segments)
		pts = append(pts, Vec2{
			X: cx + float32(math.Cos(ang))*rx,
			Y: cy + float32(math.Sin(ang))*ry,
		})
	}
	p.TriangleFan(pts, c)
}

// Disc fills a rim-only polygon stepping the angle by step radians.
func (p *Pen) Disc(cx, cy, r, step float32, c Color) {
	var pts []Vec2
	for ang := float32(0); ang < 2*math.Pi; ang += step {
		pts = append(pts, Vec2{
			X: cx + float32(math.Cos(float64(ang)))*r,
			Y: cy + float32(math.Sin(float64(ang)))*r,
		})
	}
	p.Polygon(pts, c)
}
