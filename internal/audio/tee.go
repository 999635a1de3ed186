package audio

import "github.com/vovakirdan/volsnake/internal/games/volsnake"

// Tee forwards every effect to each sink in order.
type Tee []volsnake.AudioSink

func (t Tee) Mute() {
	for _, s := range t {
		s.Mute()
	}
}

func (t Tee) VolumeUp() {
	for _, s := range t {
		s.VolumeUp()
	}
}

func (t Tee) VolumeDown() {
	for _, s := range t {
		s.VolumeDown()
	}
}
