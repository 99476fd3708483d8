package renderer

import (
	"math"
	"reflect"
	"testing"

	"github.com/pthm-cable/harbor/config"
	"github.com/pthm-cable/harbor/scene"
)

func init() {
	config.MustInit("")
}

func record(snap scene.Snapshot) *Recorder {
	rec := &Recorder{}
	NewSceneRenderer(scene.DefaultLayout).Draw(rec, snap)
	return rec
}

// birdCommands returns the flock's line batches from a full frame.
func birdCommands(t *testing.T, snap scene.Snapshot) []Command {
	t.Helper()
	full := record(snap)

	// The birds are the only 8-point width-2 lines anchored at the flock
	var out []Command
	for _, c := range full.Commands {
		if c.Op == OpLines && c.Width == 2 && len(c.Points) == 8 && c.Points[0] == (Vec2{snap.BirdsX, snap.BirdsY}) {
			out = append(out, c)
		}
	}
	return out
}

func TestDrawStartsWithModeClear(t *testing.T) {
	tests := []struct {
		night bool
		want  Color
	}{
		{false, RGB(0.5, 0.8, 1.0)},
		{true, RGB(0.05, 0.05, 0.2)},
	}
	for _, tc := range tests {
		rec := record(scene.Snapshot{Night: tc.night})
		if len(rec.Commands) == 0 || rec.Commands[0].Op != OpClear {
			t.Fatalf("night=%v: expected clear as first command", tc.night)
		}
		if rec.Commands[0].Color != tc.want {
			t.Errorf("night=%v: expected clear %+v, got %+v", tc.night, tc.want, rec.Commands[0].Color)
		}
		if rec.Count(OpClear) != 1 {
			t.Errorf("night=%v: expected a single clear, got %d", tc.night, rec.Count(OpClear))
		}
	}
}

func TestDrawPaintersOrder(t *testing.T) {
	rec := record(scene.Snapshot{BirdsX: 100, BirdsY: 300})
	cmds := rec.Commands

	// Sea gradient follows the clear directly
	if cmds[1].Op != OpGradientRect || cmds[1].Rect != (Rect{0, 0, 800, 150}) {
		t.Fatalf("expected sea gradient second, got %s %+v", cmds[1].Op, cmds[1].Rect)
	}
	// Wave lines, then the road
	if cmds[2].Op != OpLines || cmds[3].Op != OpPolygon || cmds[3].Color != Gray(0.3) {
		t.Errorf("expected waves then road, got %s, %s", cmds[2].Op, cmds[3].Op)
	}

	// Birds come last
	last := cmds[len(cmds)-1]
	if last.Op != OpLines || len(last.Points) != 8 {
		t.Errorf("expected birds last, got %s with %d points", last.Op, len(last.Points))
	}

	// The car body is drawn after every static structure
	carBody, lastTree := -1, -1
	for i, c := range cmds {
		if c.Op == OpPolygon && c.Color == RGB(1, 0, 0) && len(c.Points) == 6 && carBody < 0 {
			carBody = i
		}
		if c.Op == OpTriangleFan && c.Color == RGB(0, 0.5, 0) {
			lastTree = i
		}
	}
	if carBody < 0 || lastTree < 0 || carBody < lastTree {
		t.Errorf("expected car (%d) after trees (%d)", carBody, lastTree)
	}
}

func TestBirdsHiddenAtNight(t *testing.T) {
	day := birdCommands(t, scene.Snapshot{BirdsX: 40, BirdsY: 320})
	if len(day) != 1 {
		t.Fatalf("expected one bird line batch by day, got %d", len(day))
	}
	if n := len(day[0].Points); n != 8 {
		t.Errorf("expected 8 line vertices, got %d", n)
	}
	if day[0].Color != RGB(0, 0, 0) {
		t.Errorf("expected black birds, got %+v", day[0].Color)
	}

	night := birdCommands(t, scene.Snapshot{Night: true, BirdsX: 40, BirdsY: 320})
	if len(night) != 0 {
		t.Errorf("expected no birds at night, got %d batches", len(night))
	}

	// Nothing else changes in the command count except the birds and the
	// night-only headlights.
	dayAll := record(scene.Snapshot{})
	nightAll := record(scene.Snapshot{Night: true})
	if got, want := len(nightAll.Commands), len(dayAll.Commands)-1+2; got != want {
		t.Errorf("expected %d night commands, got %d", want, got)
	}
}

func TestCarLights(t *testing.T) {
	tests := []struct {
		name       string
		night      bool
		braking    bool
		headlights bool
		brake      bool
	}{
		{"day cruising", false, false, false, false},
		{"night cruising", true, false, true, false},
		{"day braking", false, true, false, true},
		{"night braking", true, true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := record(scene.Snapshot{Night: tc.night, Braking: tc.braking, CarX: 10})

			var beams, brake bool
			for _, c := range rec.Commands {
				if c.Op == OpTriangles && len(c.Points) == 6 && c.Points[0] == (Vec2{145, 208}) {
					beams = true
				}
				if c.Op == OpPolygon && c.Color == RGB(1, 0, 0) && len(c.Points) == 4 && c.Points[0] == (Vec2{55, 205}) {
					brake = true
				}
			}
			if beams != tc.headlights {
				t.Errorf("expected headlights=%v, got %v", tc.headlights, beams)
			}
			if brake != tc.brake {
				t.Errorf("expected brake light=%v, got %v", tc.brake, brake)
			}
		})
	}
}

func TestNightTogglesRestoreColors(t *testing.T) {
	s := scene.NewState(config.Cfg())
	before := record(s.Snapshot())

	s.HandleKeyDown('n')
	mid := record(s.Snapshot())
	if reflect.DeepEqual(before.Commands, mid.Commands) {
		t.Fatal("expected night frame to differ from day frame")
	}

	s.HandleKeyDown('n')
	after := record(s.Snapshot())
	if !reflect.DeepEqual(before.Commands, after.Commands) {
		t.Error("expected two toggles to restore every color")
	}
}

func TestShipReflectionMirrorsHull(t *testing.T) {
	rec := record(scene.Snapshot{ShipX: 0})

	var reflection, hull []Vec2
	for _, c := range rec.Commands {
		if c.Op != OpPolygon || len(c.Points) != 6 {
			continue
		}
		switch c.Color {
		case RGB(0.2, 0.1, 0):
			reflection = c.Points
		case RGB(0.4, 0.2, 0):
			hull = c.Points
		}
	}
	if reflection == nil || hull == nil {
		t.Fatal("expected both hull and reflection")
	}
	if hull[0] != (Vec2{-70, 65}) {
		t.Errorf("expected hull keel at (-70, 65), got %+v", hull[0])
	}
	// The mirror flips the hull about its own mid-height
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < 0.001 }
	if !near(reflection[0].Y, hull[2].Y) || !near(reflection[2].Y, hull[0].Y) {
		t.Errorf("expected mirrored hull, got %+v vs %+v", reflection, hull)
	}
}

func TestSmokeFollowsElapsedTime(t *testing.T) {
	smokeCenter := func(elapsed float64) Vec2 {
		rec := record(scene.Snapshot{Elapsed: elapsed})
		for _, c := range rec.Commands {
			if c.Op == OpTriangleFan && c.Color == Gray(0.9) {
				return c.Points[0]
			}
		}
		t.Fatal("no smoke drawn")
		return Vec2{}
	}
	a := smokeCenter(0)
	b := smokeCenter(0.785)
	if a == b {
		t.Error("expected smoke to move with elapsed time")
	}
}
