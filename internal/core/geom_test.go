package core

import "testing"

func TestRectIntersects(t *testing.T) {
	truck := NewRect(205, 475, 150, 50)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same lane overlap", NewRect(340, 460, 50, 50), true},
		{"ahead in lane", NewRect(400, 475, 50, 50), false},
		{"touching front edge", NewRect(355, 475, 50, 50), false},
		{"touching top edge", NewRect(250, 425, 50, 50), false},
		{"lane above", NewRect(250, 355, 50, 50), false},
		{"swallowed coin", NewRect(250, 490, 10, 10), true},
		{"fractional overlap", NewRect(354.5, 524.5, 50, 50), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truck.Intersects(tt.other); got != tt.want {
				t.Errorf("truck.Intersects(%+v) = %v, expected %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(truck); got != tt.want {
				t.Errorf("overlap is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(180, 440, 200, 120).Inset(25, 25, 35, 35)

	if r.X != 205 || r.Right() != 355 {
		t.Errorf("horizontal span = [%v, %v], expected [205, 355]", r.X, r.Right())
	}
	if r.Y != 475 || r.Bottom() != 525 {
		t.Errorf("vertical span = [%v, %v], expected [475, 525]", r.Y, r.Bottom())
	}
	if c := r.Center(); c.X != 280 || c.Y != 500 {
		t.Errorf("Center() = %+v, expected {280 500}", c)
	}
}

func TestClamp(t *testing.T) {
	for _, tt := range []struct{ v, want int }{{-3, 0}, {0, 0}, {64, 64}, {128, 128}, {300, 128}} {
		if got := Clamp(tt.v, 0, 128); got != tt.want {
			t.Errorf("Clamp(%d, 0, 128) = %d, expected %d", tt.v, got, tt.want)
		}
	}
	for _, tt := range []struct{ v, want float64 }{{-0.5, 0}, {0.4, 0.4}, {1.2, 1}} {
		if got := ClampF(tt.v, 0, 1); got != tt.want {
			t.Errorf("ClampF(%v, 0, 1) = %v, expected %v", tt.v, got, tt.want)
		}
	}
}
