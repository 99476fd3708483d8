package scene

import "testing"

func TestSpeedStaysClamped(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want float32
	}{
		{"one up", "+", 7},
		{"one down", "-", 5},
		{"ceiling", "++++++++++++++++++++", 15},
		{"floor", "--------------------", 1},
		{"floor then up", "----------+", 2},
		{"ceiling then down", "++++++++++++-", 14},
		{"unbound keys ignored", "xyz+", 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(t)
			for _, r := range tc.keys {
				s.HandleKeyDown(r)
				if v := s.CarSpeed(); v < 1 || v > 15 {
					t.Fatalf("speed %f out of [1, 15] after %q", v, r)
				}
			}
			if got := s.CarSpeed(); got != tc.want {
				t.Errorf("expected speed %f, got %f", tc.want, got)
			}
		})
	}
}

func TestBrakePressAndRelease(t *testing.T) {
	tests := []struct {
		name        string
		setup       string
		wantBraking float32
		wantRelease float32
	}{
		{"cruise", "", 3, 5},
		{"slow", "-----", 1, 3},
		{"fast", "+++++++++", 12, 6},
		{"just above floor", "---", 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(t)
			for _, r := range tc.setup {
				s.HandleKeyDown(r)
			}

			if ev := s.HandleKeyDown('b'); ev != EventBrakeOn {
				t.Errorf("expected brake_on, got %s", ev)
			}
			if !s.Braking() {
				t.Error("expected braking after key down")
			}
			if got := s.CarSpeed(); got != tc.wantBraking {
				t.Errorf("expected braking speed %f, got %f", tc.wantBraking, got)
			}

			if ev := s.HandleKeyUp('B'); ev != EventBrakeOff {
				t.Errorf("expected brake_off, got %s", ev)
			}
			if s.Braking() {
				t.Error("expected brake released after key up")
			}
			if got := s.CarSpeed(); got != tc.wantRelease {
				t.Errorf("expected release speed %f, got %f", tc.wantRelease, got)
			}
		})
	}
}

func TestRepeatedBrakeHitsFloor(t *testing.T) {
	s := newTestState(t)
	for i := 0; i < 5; i++ {
		s.HandleKeyDown('b')
	}
	if s.CarSpeed() != 1 {
		t.Errorf("expected floor speed 1, got %f", s.CarSpeed())
	}
}

func TestNightToggleParity(t *testing.T) {
	s := newTestState(t)
	for i := 1; i <= 6; i++ {
		r := 'n'
		if i%2 == 0 {
			r = 'N'
		}
		if ev := s.HandleKeyDown(r); ev != EventModeChanged {
			t.Fatalf("expected mode_changed, got %s", ev)
		}
		if s.Night() != (i%2 == 1) {
			t.Fatalf("after %d toggles expected night=%v", i, i%2 == 1)
		}
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		key  rune
		up   bool
		want Event
	}{
		{'+', false, EventSpeedChanged},
		{'-', false, EventSpeedChanged},
		{'o', false, EventProjectionChanged},
		{'s', false, EventAlert},
		{'S', false, EventAlert},
		{'q', false, EventNone},
		{'n', true, EventNone},
		{'s', true, EventNone},
		{'b', true, EventBrakeOff},
	}

	for _, tc := range tests {
		s := newTestState(t)
		var got Event
		if tc.up {
			got = s.HandleKeyUp(tc.key)
		} else {
			got = s.HandleKeyDown(tc.key)
		}
		if got != tc.want {
			t.Errorf("key %q up=%v: expected %s, got %s", tc.key, tc.up, tc.want, got)
		}
	}
}

func TestAlertLeavesStateUntouched(t *testing.T) {
	s := newTestState(t)
	before := s.Snapshot()
	s.HandleKeyDown('s')
	if s.Snapshot() != before || s.CarSpeed() != 6 {
		t.Error("expected alert to leave scene state unchanged")
	}
}
