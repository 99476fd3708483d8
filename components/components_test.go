package components

import "testing"

func TestParseKindRoundtrip(t *testing.T) {
	for k := Kind(0); k < NumKinds; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, ok, k)
		}
	}

	if _, ok := ParseKind("tram"); ok {
		t.Error("expected unknown kind to fail")
	}
	if NumKinds.String() != "unknown" {
		t.Errorf("expected out-of-range kind to be unknown, got %q", NumKinds.String())
	}
}

func TestWrapContains(t *testing.T) {
	w := Wrap{Min: -120, Max: 850}
	tests := []struct {
		x    float32
		want bool
	}{
		{-120, true},
		{0, true},
		{850, true},
		{850.5, false},
		{-121, false},
	}
	for _, tc := range tests {
		if got := w.Contains(tc.x); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}
