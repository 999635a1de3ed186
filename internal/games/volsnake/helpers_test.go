package volsnake

import (
	"math/rand"
	"testing"
)

// recordingSink counts volume effects in call order.
type recordingSink struct {
	calls []string
}

func (r *recordingSink) Mute()       { r.calls = append(r.calls, "mute") }
func (r *recordingSink) VolumeUp()   { r.calls = append(r.calls, "up") }
func (r *recordingSink) VolumeDown() { r.calls = append(r.calls, "down") }

func (r *recordingSink) count(name string) int {
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

type countingRedrawer struct {
	requests int
}

func (c *countingRedrawer) RequestRedraw() { c.requests++ }

func newTestSession(t *testing.T, size int, seed int64) (*Session, *recordingSink, *countingRedrawer) {
	t.Helper()
	sink := &recordingSink{}
	redraw := &countingRedrawer{}
	s, err := NewSession(Options{
		Size:        size,
		StartLength: StartingLength,
		Rand:        rand.New(rand.NewSource(seed)),
		Sink:        sink,
		Redrawer:    redraw,
	})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, sink, redraw
}

// place overwrites the session state for scenario tests.
func (s *Session) place(body []Point, dir Direction, up, down Point) {
	s.body = append([]Point(nil), body...)
	s.dir = dir
	s.up = up
	s.down = down
	s.hasMoved = false
}

func assertTokensValid(t *testing.T, s *Session) {
	t.Helper()
	if s.UpToken() == s.DownToken() {
		t.Errorf("tokens share a cell: %v", s.UpToken())
	}
	for _, p := range s.Body() {
		if p == s.UpToken() {
			t.Errorf("up token %v lies on the body", p)
		}
		if p == s.DownToken() {
			t.Errorf("down token %v lies on the body", p)
		}
	}
	for _, tok := range []Point{s.UpToken(), s.DownToken()} {
		if tok.X < 0 || tok.X >= s.Size() || tok.Y < 0 || tok.Y >= s.Size() {
			t.Errorf("token %v outside the %dx%d board", tok, s.Size(), s.Size())
		}
	}
}

func equalPoints(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
