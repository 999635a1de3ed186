package volsnake

// AudioSink receives the volume side effects of the game.
// Calls are fire-and-forget: implementations handle their own failures and
// must return promptly, since they run inside a tick.
type AudioSink interface {
	Mute()
	VolumeUp()
	VolumeDown()
}

// Redrawer is notified after every applied move.
// Requests are advisory; several of them before a repaint collapse into one.
type Redrawer interface {
	RequestRedraw()
}

type nopSink struct{}

func (nopSink) Mute()       {}
func (nopSink) VolumeUp()   {}
func (nopSink) VolumeDown() {}

type nopRedrawer struct{}

func (nopRedrawer) RequestRedraw() {}
