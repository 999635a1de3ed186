package core

import "testing"

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name  string
		outer Rect
		w, h  int
		want  Rect
	}{
		{"board in 80x24", NewRect(0, 0, 80, 24), 42, 22, NewRect(19, 1, 42, 22)},
		{"overlay in offset rect", NewRect(10, 5, 20, 10), 6, 4, NewRect(17, 8, 6, 4)},
		{"larger than outer", NewRect(0, 0, 10, 4), 14, 6, NewRect(-2, -1, 14, 6)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.outer.Centered(tc.w, tc.h)
			if got != tc.want {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.want)
			}
			if got.Right() != tc.want.X+tc.w || got.Bottom() != tc.want.Y+tc.h {
				t.Errorf("edges = (%d, %d)", got.Right(), got.Bottom())
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{19, 0, 80, 19},
		{-3, 0, 80, 0},
		{95, 0, 80, 80},
		{0, 0, 0, 0},
	}
	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestActionIsDirectional(t *testing.T) {
	tests := []struct {
		action Action
		want   bool
	}{
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionNone, false},
		{ActionTerminate, false},
	}
	for _, tc := range tests {
		if got := tc.action.IsDirectional(); got != tc.want {
			t.Errorf("%v.IsDirectional() = %v, expected %v", tc.action, got, tc.want)
		}
	}
}
