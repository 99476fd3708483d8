package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/harbor/config"
)

var (
	primary  = Extent{Left: 0, Right: 800, Bottom: 0, Top: 600}
	expanded = Extent{Left: -100, Right: 900, Bottom: -100, Top: 700}
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(850, 600, primary, expanded)

	if cam.Expanded() {
		t.Error("expected primary extent at startup")
	}
	if cam.Extent() != primary {
		t.Errorf("expected %+v, got %+v", primary, cam.Extent())
	}
}

func TestWorldToScreenCorners(t *testing.T) {
	cam := New(850, 600, primary, expanded)

	tests := []struct {
		name   string
		wx, wy float32
		sx, sy float32
	}{
		{"bottom-left", 0, 0, 0, 600},
		{"top-right", 800, 600, 850, 0},
		{"center", 400, 300, 425, 300},
	}

	for _, tc := range tests {
		sx, sy := cam.WorldToScreen(tc.wx, tc.wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("%s: expected (%f, %f), got (%f, %f)", tc.name, tc.sx, tc.sy, sx, sy)
		}
	}
}

func TestExpandedShrinksScene(t *testing.T) {
	cam := New(850, 600, primary, expanded)
	cam.Toggle()

	sx, sy := cam.WorldToScreen(-100, -100)
	if !near(sx, 0) || !near(sy, 600) {
		t.Errorf("expected expanded origin at bottom-left, got (%f, %f)", sx, sy)
	}

	// The primary corner now sits inside the window
	sx, sy = cam.WorldToScreen(0, 0)
	if !near(sx, 85) || !near(sy, 525) {
		t.Errorf("expected (85, 525), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(850, 600, primary, expanded)

	testCases := []struct{ sx, sy float32 }{
		{425, 300},
		{100, 100},
		{800, 550},
	}

	for _, wide := range []bool{false, true} {
		cam.SetExpanded(wide)
		for _, tc := range testCases {
			wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
			sx, sy := cam.WorldToScreen(wx, wy)
			if !near(sx, tc.sx) || !near(sy, tc.sy) {
				t.Errorf("wide=%v roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
					wide, tc.sx, tc.sy, wx, wy, sx, sy)
			}
		}
	}
}

func TestToggleParity(t *testing.T) {
	cam := New(850, 600, primary, expanded)
	for i := 1; i <= 4; i++ {
		cam.Toggle()
		want := primary
		if i%2 == 1 {
			want = expanded
		}
		if cam.Extent() != want {
			t.Errorf("after %d toggles expected %+v, got %+v", i, want, cam.Extent())
		}
	}
	cam.Toggle()
	cam.Reset()
	if cam.Expanded() {
		t.Error("expected reset to select the primary extent")
	}
}

func TestResize(t *testing.T) {
	cam := New(850, 600, primary, expanded)
	cam.Resize(1700, 1200)

	sx, sy := cam.WorldToScreen(400, 300)
	if !near(sx, 850) || !near(sy, 600) {
		t.Errorf("expected center (850, 600) after resize, got (%f, %f)", sx, sy)
	}

	cam.Resize(0, 0)
	if cam.ViewportW != 1700 {
		t.Error("expected zero-size resize to be ignored")
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(850, 600, primary, expanded)

	if !cam.IsVisible(400, 300, 1) {
		t.Error("expected center to be visible")
	}
	if cam.IsVisible(-120, 300, 10) {
		t.Error("expected car reset offset to be off screen")
	}
	cam.Toggle()
	if !cam.IsVisible(-50, 300, 10) {
		t.Error("expected expanded extent to reveal x=-50")
	}
}

func TestFromConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cam := FromConfig(cfg)
	if cam.ViewportW != 850 || cam.ViewportH != 600 {
		t.Errorf("expected 850x600 viewport, got %fx%f", cam.ViewportW, cam.ViewportH)
	}
	if cam.Extent() != primary {
		t.Errorf("expected primary extent %+v, got %+v", primary, cam.Extent())
	}
}
