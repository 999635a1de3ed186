package volsnake

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidOptions is returned by NewSession for unusable options.
var ErrInvalidOptions = errors.New("volsnake: invalid session options")

// Outcome classifies what a single step did.
type Outcome int

const (
	OutcomeAdvanced Outcome = iota
	OutcomeAteUp
	OutcomeAteDown
	OutcomeAteBoth // Only possible if the two tokens share a cell
	OutcomeSelfCollided
	OutcomeHalted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeAteUp:
		return "ate_up"
	case OutcomeAteDown:
		return "ate_down"
	case OutcomeAteBoth:
		return "ate_both"
	case OutcomeSelfCollided:
		return "self_collided"
	case OutcomeHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// Options configures a new Session.
type Options struct {
	Size        int        // Board side in cells, at least 2
	StartLength int        // Length target after each reset, at least 1
	Rand        *rand.Rand // Source for token placement, required
	Sink        AudioSink  // Receives volume effects; nil discards them
	Redrawer    Redrawer   // Notified after each applied move; nil ignores

	// MaxSpawnAttempts bounds rejection sampling before the spawner falls
	// back to scanning free cells. Zero selects the default.
	MaxSpawnAttempts int
}

// Stats counts what happened over the lifetime of a session.
type Stats struct {
	Ticks       uint64
	VolumeUps   int
	VolumeDowns int
	Mutes       int
	Resets      int
	BestLength  int
}

// Session is the complete state of one game: the snake, its heading, the
// length target, both tokens and the one-turn-per-tick latch.
// A Session is not safe for concurrent use; the host drives Step and Turn
// from a single event loop.
type Session struct {
	size        int
	startLength int
	spawner     *Spawner
	sink        AudioSink
	redrawer    Redrawer

	body       []Point // Tail first, head last
	length     int
	dir        Direction
	up         Point
	down       Point
	hasMoved   bool
	terminated bool

	stats Stats
}

// NewSession validates opts and builds a session in its starting state.
func NewSession(opts Options) (*Session, error) {
	switch {
	case opts.Size < 2:
		return nil, fmt.Errorf("%w: size %d < 2", ErrInvalidOptions, opts.Size)
	case opts.StartLength < 1:
		return nil, fmt.Errorf("%w: start length %d < 1", ErrInvalidOptions, opts.StartLength)
	case opts.Rand == nil:
		return nil, fmt.Errorf("%w: nil rand source", ErrInvalidOptions)
	}

	s := &Session{
		size:        opts.Size,
		startLength: opts.StartLength,
		spawner:     NewSpawner(opts.Size, opts.Rand, opts.MaxSpawnAttempts),
		sink:        opts.Sink,
		redrawer:    opts.Redrawer,
	}
	if s.sink == nil {
		s.sink = nopSink{}
	}
	if s.redrawer == nil {
		s.redrawer = nopRedrawer{}
	}

	fresh, err := s.freshState()
	if err != nil {
		return nil, fmt.Errorf("volsnake: cannot place tokens: %w", err)
	}
	s.apply(fresh)
	s.stats.BestLength = s.length
	return s, nil
}

// startState is everything a reset replaces.
type startState struct {
	body []Point
	up   Point
	down Point
}

// freshState prepares a reset without touching the session, so a failed
// token placement leaves the current state intact.
func (s *Session) freshState() (startState, error) {
	body := []Point{{X: s.size / 2, Y: s.size / 2}}

	up, err := s.spawner.Spawn(body, noPoint)
	if err != nil {
		return startState{}, err
	}
	down, err := s.spawner.Spawn(body, up)
	if err != nil {
		return startState{}, err
	}
	return startState{body: body, up: up, down: down}, nil
}

func (s *Session) apply(st startState) {
	s.body = st.body
	s.up = st.up
	s.down = st.down
	s.length = s.startLength
	s.dir = DirRight
	s.hasMoved = false
}

// Step advances the game by one tick.
//
// The head moves one cell (wrapping at the edges). Landing on the body, not
// counting the current head, mutes audio and resets the session without
// applying the move. Landing on a token fires its volume effect, respawns it
// and raises the length target by one; both tokens are checked, up first.
// The new head is then appended and the tail dropped if the body is longer
// than the target. The only error is a token that cannot be placed, in which
// case only the turn latch and the tick counter have changed.
func (s *Session) Step() (Outcome, error) {
	if s.terminated {
		return OutcomeHalted, nil
	}

	candidate := s.Head().Step(s.dir, s.size)
	s.hasMoved = false
	s.stats.Ticks++

	if contains(s.body[:len(s.body)-1], candidate) {
		fresh, err := s.freshState()
		if err != nil {
			return OutcomeSelfCollided, fmt.Errorf("volsnake: cannot reset board: %w", err)
		}
		s.sink.Mute()
		s.stats.Mutes++
		s.stats.Resets++
		s.apply(fresh)
		s.redrawer.RequestRedraw()
		return OutcomeSelfCollided, nil
	}

	ateUp := candidate == s.up
	ateDown := candidate == s.down
	up, down := s.up, s.down

	var err error
	if ateUp {
		if up, err = s.spawner.Spawn(s.body, candidate, down); err != nil {
			return OutcomeAteUp, fmt.Errorf("volsnake: cannot respawn up token: %w", err)
		}
	}
	if ateDown {
		if down, err = s.spawner.Spawn(s.body, candidate, up); err != nil {
			return OutcomeAteDown, fmt.Errorf("volsnake: cannot respawn down token: %w", err)
		}
	}

	outcome := OutcomeAdvanced
	if ateUp {
		s.sink.VolumeUp()
		s.up = up
		s.length++
		s.stats.VolumeUps++
		outcome = OutcomeAteUp
	}
	if ateDown {
		s.sink.VolumeDown()
		s.down = down
		s.length++
		s.stats.VolumeDowns++
		if outcome == OutcomeAteUp {
			outcome = OutcomeAteBoth
		} else {
			outcome = OutcomeAteDown
		}
	}

	s.body = append(s.body, candidate)
	if len(s.body) > s.length {
		s.body = s.body[1:]
	}
	s.stats.BestLength = max(s.stats.BestLength, s.length)

	s.redrawer.RequestRedraw()
	return outcome, nil
}

// Turn requests a new heading. It is ignored when a turn was already
// accepted since the last step, or when d would reverse the snake onto
// itself. Reports whether the request was accepted.
func (s *Session) Turn(d Direction) bool {
	if s.hasMoved || s.terminated {
		return false
	}
	if d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	s.hasMoved = true
	return true
}

// Terminate stops the session; further steps return OutcomeHalted.
// No resources are held, so there is nothing else to release.
func (s *Session) Terminate() {
	s.terminated = true
}

// Head returns the most recently added body cell.
func (s *Session) Head() Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the snake, tail first.
func (s *Session) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Session) Size() int            { return s.size }
func (s *Session) Length() int          { return s.length }
func (s *Session) Direction() Direction { return s.dir }
func (s *Session) UpToken() Point       { return s.up }
func (s *Session) DownToken() Point     { return s.down }
func (s *Session) HasMoved() bool       { return s.hasMoved }
func (s *Session) Terminated() bool     { return s.terminated }
func (s *Session) Stats() Stats         { return s.stats }
