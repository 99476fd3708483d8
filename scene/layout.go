package scene

// Point is a world-space anchor for a static shape.
type Point struct {
	X, Y float32
}

// Building is a world-space rectangle anchored at its bottom-left corner.
type Building struct {
	X, Y, W, H float32
}

// Layout holds the static scenery. It never changes after startup.
type Layout struct {
	Buildings    [3]Building
	StreetLights [3]Point
	Trees        [3]Point
	Clouds       [3]Point

	Mosque     Point
	Playground Point
	Bench      Point
	Celestial  Point // sun by day, moon by night
}

// DefaultLayout is the harbor front along the road at y=200.
var DefaultLayout = Layout{
	Buildings: [3]Building{
		{X: 100, Y: 200, W: 60, H: 80},
		{X: 300, Y: 200, W: 80, H: 120},
		{X: 450, Y: 200, W: 50, H: 70},
	},
	StreetLights: [3]Point{{150, 200}, {350, 200}, {550, 200}},
	Trees:        [3]Point{{750, 200}, {700, 200}, {650, 200}},
	Clouds:       [3]Point{{150, 500}, {400, 550}, {600, 480}},

	Mosque:     Point{20, 200},
	Playground: Point{500, 200},
	Bench:      Point{620, 200},
	Celestial:  Point{700, 500},
}
