package renderer

// Op identifies a canvas call.
type Op uint8

const (
	OpClear Op = iota
	OpPolygon
	OpGradientRect
	OpTriangles
	OpTriangleFan
	OpLines
)

var opNames = [...]string{
	OpClear:        "clear",
	OpPolygon:      "polygon",
	OpGradientRect: "gradient_rect",
	OpTriangles:    "triangles",
	OpTriangleFan:  "triangle_fan",
	OpLines:        "lines",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// Command is one recorded canvas call.
type Command struct {
	Op     Op
	Points []Vec2
	Color  Color
	Top    Color // gradient top color; Color holds the bottom
	Rect   Rect
	Width  float32
}

// Recorder is a Canvas that keeps every call in order.
type Recorder struct {
	Commands []Command
}

// Reset drops recorded commands, keeping capacity.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Count returns the number of commands with the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *Recorder) add(cmd Command, pts []Vec2) {
	if pts != nil {
		cmd.Points = append([]Vec2(nil), pts...)
	}
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) Clear(c Color) {
	r.add(Command{Op: OpClear, Color: c}, nil)
}

func (r *Recorder) Polygon(pts []Vec2, c Color) {
	r.add(Command{Op: OpPolygon, Color: c}, pts)
}

func (r *Recorder) GradientRect(rect Rect, bottom, top Color) {
	r.add(Command{Op: OpGradientRect, Rect: rect, Color: bottom, Top: top}, nil)
}

func (r *Recorder) Triangles(pts []Vec2, c Color) {
	r.add(Command{Op: OpTriangles, Color: c}, pts)
}

func (r *Recorder) TriangleFan(pts []Vec2, c Color) {
	r.add(Command{Op: OpTriangleFan, Color: c}, pts)
}

func (r *Recorder) Lines(pts []Vec2, width float32, c Color) {
	r.add(Command{Op: OpLines, Color: c, Width: width}, pts)
}

// Counter forwards to another Canvas while counting commands and vertices.
// A nil Next makes it a pure counter.
type Counter struct {
	Next     Canvas
	Commands int
	Vertices int
}

// Reset zeroes the counts.
func (c *Counter) Reset() {
	c.Commands = 0
	c.Vertices = 0
}

func (c *Counter) count(n int) {
	c.Commands++
	c.Vertices += n
}

func (c *Counter) Clear(col Color) {
	c.count(0)
	if c.Next != nil {
		c.Next.Clear(col)
	}
}

func (c *Counter) Polygon(pts []Vec2, col Color) {
	c.count(len(pts))
	if c.Next != nil {
		c.Next.Polygon(pts, col)
	}
}

func (c *Counter) GradientRect(r Rect, bottom, top Color) {
	c.count(4)
	if c.Next != nil {
		c.Next.GradientRect(r, bottom, top)
	}
}

func (c *Counter) Triangles(pts []Vec2, col Color) {
	c.count(len(pts))
	if c.Next != nil {
		c.Next.Triangles(pts, col)
	}
}

func (c *Counter) TriangleFan(pts []Vec2, col Color) {
	c.count(len(pts))
	if c.Next != nil {
		c.Next.TriangleFan(pts, col)
	}
}

func (c *Counter) Lines(pts []Vec2, width float32, col Color) {
	c.count(len(pts))
	if c.Next != nil {
		c.Next.Lines(pts, width, col)
	}
}
