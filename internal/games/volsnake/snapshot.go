package volsnake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Length     int
	BodyLen    int
	Head       Point
	Dir        Direction
	UpToken    Point
	DownToken  Point
	HasMoved   bool
	Terminated bool
	Stats      Stats
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.stats.Ticks,
		Length:     s.length,
		BodyLen:    len(s.body),
		Head:       s.Head(),
		Dir:        s.dir,
		UpToken:    s.up,
		DownToken:  s.down,
		HasMoved:   s.hasMoved,
		Terminated: s.terminated,
		Stats:      s.stats,
	}
}
