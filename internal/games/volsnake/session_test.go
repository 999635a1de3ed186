package volsnake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewSessionStartingState(t *testing.T) {
	s, _, _ := newTestSession(t, GridSize, 1)

	if !equalPoints(s.Body(), []Point{{X: GridSize / 2, Y: GridSize / 2}}) {
		t.Errorf("Body() = %v, expected the single center cell", s.Body())
	}
	if s.Length() != StartingLength {
		t.Errorf("Length() = %d, expected %d", s.Length(), StartingLength)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.HasMoved() {
		t.Error("latch should start cleared")
	}
	assertTokensValid(t, s)
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"tiny board", Options{Size: 1, StartLength: 5, Rand: rand.New(rand.NewSource(1))}},
		{"zero length", Options{Size: 10, StartLength: 0, Rand: rand.New(rand.NewSource(1))}},
		{"no rand", Options{Size: 10, StartLength: 5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSession(tc.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("NewSession() error = %v, expected ErrInvalidOptions", err)
			}
		})
	}
}

func TestScenarioEatUpToken(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	s.place([]Point{{X: 5, Y: 5}}, DirRight, Point{X: 6, Y: 5}, Point{X: 0, Y: 0})

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeAteUp {
		t.Errorf("outcome = %v, expected ate_up", outcome)
	}
	if sink.count("up") != 1 || len(sink.calls) != 1 {
		t.Errorf("sink calls = %v, expected exactly one volume up", sink.calls)
	}
	if s.Length() != 6 {
		t.Errorf("Length() = %d, expected 6", s.Length())
	}
	want := []Point{{X: 5, Y: 5}, {X: 6, Y: 5}}
	if !equalPoints(s.Body(), want) {
		t.Errorf("Body() = %v, expected %v", s.Body(), want)
	}
	if s.UpToken() == (Point{X: 6, Y: 5}) {
		t.Error("up token should have respawned away from the head")
	}
	if s.DownToken() != (Point{X: 0, Y: 0}) {
		t.Errorf("down token moved to %v, expected it untouched", s.DownToken())
	}
	assertTokensValid(t, s)
}

func TestScenarioEatDownToken(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	s.place([]Point{{X: 5, Y: 5}}, DirDown, Point{X: 0, Y: 0}, Point{X: 5, Y: 6})

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeAteDown {
		t.Errorf("outcome = %v, expected ate_down", outcome)
	}
	if sink.count("down") != 1 || len(sink.calls) != 1 {
		t.Errorf("sink calls = %v, expected exactly one volume down", sink.calls)
	}
	if s.Length() != StartingLength+1 {
		t.Errorf("Length() = %d, expected %d", s.Length(), StartingLength+1)
	}
	assertTokensValid(t, s)
}

func TestScenarioSelfCollision(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	s.place([]Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, DirLeft, Point{X: 8, Y: 8}, Point{X: 9, Y: 9})
	s.length = 9

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeSelfCollided {
		t.Fatalf("outcome = %v, expected self_collided", outcome)
	}
	if sink.count("mute") != 1 || len(sink.calls) != 1 {
		t.Errorf("sink calls = %v, expected exactly one mute", sink.calls)
	}
	if !equalPoints(s.Body(), []Point{{X: 5, Y: 5}}) {
		t.Errorf("Body() = %v, expected reset to center", s.Body())
	}
	if s.Length() != StartingLength {
		t.Errorf("Length() = %d, expected %d", s.Length(), StartingLength)
	}
	if s.Direction() != DirRight {
		t.Errorf("Direction() = %v, expected right after reset", s.Direction())
	}
	if st := s.Stats(); st.Mutes != 1 || st.Resets != 1 {
		t.Errorf("Stats() = %+v, expected one mute and one reset", st)
	}
	assertTokensValid(t, s)
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	// A closed square: moving up from the head lands on the tail.
	s.place([]Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}}, DirUp, Point{X: 8, Y: 8}, Point{X: 9, Y: 9})
	s.length = 4

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeSelfCollided {
		t.Errorf("outcome = %v, expected self_collided", outcome)
	}
	if sink.count("mute") != 1 {
		t.Errorf("sink calls = %v, expected a mute", sink.calls)
	}
}

func TestSelfCollisionSkipsTokenEffects(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	// Token placed on a body cell (never happens in play) must not fire.
	s.place([]Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, DirLeft, Point{X: 2, Y: 1}, Point{X: 9, Y: 9})

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if sink.count("up") != 0 {
		t.Errorf("sink calls = %v, volume up should not fire on a collision", sink.calls)
	}
}

func TestScenarioWrapAround(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	s.place([]Point{{X: 8, Y: 5}, {X: 9, Y: 5}}, DirRight, Point{X: 3, Y: 3}, Point{X: 4, Y: 4})

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeAdvanced {
		t.Errorf("outcome = %v, expected advanced", outcome)
	}
	if s.Head() != (Point{X: 0, Y: 5}) {
		t.Errorf("Head() = %v, expected (0,5)", s.Head())
	}
	if len(sink.calls) != 0 {
		t.Errorf("sink calls = %v, expected none", sink.calls)
	}
}

func TestBothTokensSameCell(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	s.place([]Point{{X: 5, Y: 5}}, DirRight, Point{X: 6, Y: 5}, Point{X: 6, Y: 5})

	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeAteBoth {
		t.Errorf("outcome = %v, expected ate_both", outcome)
	}
	if len(sink.calls) != 2 || sink.calls[0] != "up" || sink.calls[1] != "down" {
		t.Errorf("sink calls = %v, expected [up down]", sink.calls)
	}
	if s.Length() != StartingLength+2 {
		t.Errorf("Length() = %d, expected %d", s.Length(), StartingLength+2)
	}
	assertTokensValid(t, s)
}

func TestGrowthLaw(t *testing.T) {
	s, _, _ := newTestSession(t, 20, 11)
	body := []Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}}
	s.place(body, DirRight, Point{X: 6, Y: 1}, Point{X: 15, Y: 15})

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if s.Length() != 6 || len(s.Body()) != 6 {
		t.Fatalf("after eating: Length() = %d, len(Body()) = %d, expected 6 and 6", s.Length(), len(s.Body()))
	}
	if s.Body()[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("tail should be kept on the eating tick, got %v", s.Body()[0])
	}

	// Keep tokens out of the way for the plain moves that follow.
	s.up = Point{X: 0, Y: 18}
	s.down = Point{X: 0, Y: 19}
	for i := 0; i < 5; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if len(s.Body()) != s.Length() {
			t.Errorf("tick %d: len(Body()) = %d, expected %d", i, len(s.Body()), s.Length())
		}
	}
	if s.Length() != 6 {
		t.Errorf("Length() = %d, expected 6 without further eating", s.Length())
	}
}

func TestBodyGrowsFromSingleCell(t *testing.T) {
	s, _, _ := newTestSession(t, GridSize, 3)
	s.up = Point{X: 0, Y: 0}
	s.down = Point{X: 1, Y: 0}

	for i := 1; i <= StartingLength+3; i++ {
		if _, err := s.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		want := min(i+1, StartingLength)
		if len(s.Body()) != want {
			t.Errorf("tick %d: len(Body()) = %d, expected %d", i, len(s.Body()), want)
		}
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	for _, current := range Directions {
		for _, requested := range Directions {
			s, _, _ := newTestSession(t, 10, 1)
			s.dir = current

			accepted := s.Turn(requested)
			wantAccepted := requested != current.Opposite()
			if accepted != wantAccepted {
				t.Errorf("Turn(%v) from %v = %v, expected %v", requested, current, accepted, wantAccepted)
			}
			if !accepted {
				if s.Direction() != current || s.HasMoved() {
					t.Errorf("rejected turn %v from %v changed state", requested, current)
				}
				continue
			}
			if s.Direction() != requested || !s.HasMoved() {
				t.Errorf("accepted turn %v from %v not applied", requested, current)
			}

			// Consumed by the next tick, then allowed again.
			if _, err := s.Step(); err != nil {
				t.Fatalf("Step() failed: %v", err)
			}
			if s.HasMoved() {
				t.Error("Step() should clear the latch")
			}
		}
	}
}

func TestSingleTurnPerTick(t *testing.T) {
	s, _, _ := newTestSession(t, 10, 1)
	s.place([]Point{{X: 5, Y: 5}}, DirRight, Point{X: 0, Y: 0}, Point{X: 1, Y: 0})

	if !s.Turn(DirDown) {
		t.Fatal("first turn should be accepted")
	}
	if s.Turn(DirLeft) {
		t.Error("second turn before a tick should be ignored")
	}
	if s.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", s.Direction())
	}

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if s.Head() != (Point{X: 5, Y: 6}) {
		t.Errorf("Head() = %v, expected (5,6)", s.Head())
	}
	if !s.Turn(DirLeft) {
		t.Error("turn after a tick should be accepted")
	}
}

func TestTokenExclusivityDuringPlay(t *testing.T) {
	s, sink, _ := newTestSession(t, 8, 77)
	turns := rand.New(rand.NewSource(78))

	for i := 0; i < 5000; i++ {
		s.Turn(Directions[turns.Intn(len(Directions))])
		outcome, err := s.Step()
		if err != nil {
			t.Fatalf("Step() failed at tick %d: %v", i, err)
		}
		if outcome != OutcomeAdvanced {
			assertTokensValid(t, s)
		}
		if len(s.Body()) > s.Length() {
			t.Fatalf("tick %d: body %d longer than target %d", i, len(s.Body()), s.Length())
		}
		seen := make(map[Point]bool)
		for _, p := range s.Body() {
			if seen[p] {
				t.Fatalf("tick %d: body overlaps itself at %v", i, p)
			}
			seen[p] = true
		}
	}

	st := s.Stats()
	if st.VolumeUps != sink.count("up") || st.VolumeDowns != sink.count("down") || st.Mutes != sink.count("mute") {
		t.Errorf("Stats() = %+v disagree with sink calls", st)
	}
}

func TestRedrawRequests(t *testing.T) {
	s, _, redraw := newTestSession(t, 10, 5)
	s.place([]Point{{X: 5, Y: 5}}, DirRight, Point{X: 0, Y: 0}, Point{X: 1, Y: 0})

	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if redraw.requests != 1 {
		t.Errorf("redraw requests = %d, expected 1", redraw.requests)
	}

	s.place([]Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}, DirLeft, Point{X: 8, Y: 8}, Point{X: 9, Y: 9})
	if _, err := s.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if redraw.requests != 2 {
		t.Errorf("redraw requests = %d, a reset should request one so the fresh board shows", redraw.requests)
	}
}

func TestTerminateHaltsSession(t *testing.T) {
	s, sink, _ := newTestSession(t, 10, 5)
	before := s.Snapshot()

	s.Terminate()
	outcome, err := s.Step()
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	if outcome != OutcomeHalted {
		t.Errorf("outcome = %v, expected halted", outcome)
	}
	if s.Turn(DirDown) {
		t.Error("Turn() should be ignored after Terminate()")
	}

	after := s.Snapshot()
	after.Terminated = before.Terminated
	if after != before {
		t.Errorf("state changed after Terminate(): %+v vs %+v", before, after)
	}
	if len(sink.calls) != 0 {
		t.Errorf("sink calls = %v, expected none", sink.calls)
	}
}

func TestStepSpawnFailureLeavesStateUntouched(t *testing.T) {
	s, sink, redraw := newTestSession(t, 2, 5)
	// Eating the down token leaves no free cell for it.
	s.place([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, DirDown, Point{X: 0, Y: 1}, Point{X: 1, Y: 1})
	s.length = 10
	before := s.Body()

	_, err := s.Step()
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("Step() error = %v, expected ErrGridFull", err)
	}
	if !equalPoints(s.Body(), before) {
		t.Errorf("Body() = %v, expected %v", s.Body(), before)
	}
	if s.DownToken() != (Point{X: 1, Y: 1}) || s.Length() != 10 {
		t.Error("failed step should not move tokens or grow the snake")
	}
	if len(sink.calls) != 0 || redraw.requests != 0 {
		t.Errorf("failed step should have no side effects, got calls %v and %d redraws", sink.calls, redraw.requests)
	}
}

func TestDeterminism(t *testing.T) {
	s1, _, _ := newTestSession(t, GridSize, 12345)
	s2, _, _ := newTestSession(t, GridSize, 12345)
	turns := []Direction{DirDown, DirLeft, DirUp, DirRight}

	for i := 0; i < 400; i++ {
		if i%7 == 0 {
			d := turns[(i/7)%len(turns)]
			s1.Turn(d)
			s2.Turn(d)
		}
		o1, err1 := s1.Step()
		o2, err2 := s2.Step()
		if err1 != nil || err2 != nil {
			t.Fatalf("Step() failed: %v / %v", err1, err2)
		}
		if o1 != o2 {
			t.Fatalf("tick %d: outcome mismatch %v vs %v", i, o1, o2)
		}
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", s1.Snapshot(), s2.Snapshot())
	}
	if !equalPoints(s1.Body(), s2.Body()) {
		t.Error("bodies differ")
	}
}
