package audio

import (
	"bytes"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate     = 44100
	channelCount   = 2
	bytesPerSample = 4 // float32
)

// note is one segment of a chime.
type note struct {
	freq     float64
	duration time.Duration
}

// Chime shapes per effect: rising for up, falling for down, low buzz for mute.
var (
	chimeUp   = []note{{660, 70 * time.Millisecond}, {880, 90 * time.Millisecond}}
	chimeDown = []note{{880, 70 * time.Millisecond}, {660, 90 * time.Millisecond}}
	chimeMute = []note{{220, 180 * time.Millisecond}}
)

var (
	otoOnce  sync.Once
	otoCtx   *oto.Context
	otoReady chan struct{}
	otoErr   error
)

// sharedContext returns the process-wide oto context; oto allows only one.
func sharedContext() (*oto.Context, chan struct{}, error) {
	otoOnce.Do(func() {
		otoCtx, otoReady, otoErr = oto.NewContext(sampleRate, channelCount, oto.FormatFloat32LE)
	})
	return otoCtx, otoReady, otoErr
}

// ChimeSink plays a short tone for each effect. Playback runs on its own
// goroutine and never blocks the caller.
type ChimeSink struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	logger *log.Logger

	up, down, mute []byte
}

// NewChimeSink opens the audio device and pre-renders the tones.
func NewChimeSink(volume float64, logger *log.Logger) (*ChimeSink, error) {
	ctx, ready, err := sharedContext()
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open output device: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ChimeSink{
		ctx:    ctx,
		ready:  ready,
		volume: math.Max(0, math.Min(1, volume)),
		logger: logger,
		up:     renderNotes(chimeUp),
		down:   renderNotes(chimeDown),
		mute:   renderNotes(chimeMute),
	}, nil
}

func (c *ChimeSink) Mute()       { c.play("mute", c.mute) }
func (c *ChimeSink) VolumeUp()   { c.play("volume_up", c.up) }
func (c *ChimeSink) VolumeDown() { c.play("volume_down", c.down) }

func (c *ChimeSink) play(effect string, samples []byte) {
	select {
	case <-c.ready:
	default:
		c.logger.Debug("chime skipped, device not ready", "effect", effect)
		return
	}

	go func() {
		player := c.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(c.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			c.logger.Warn("chime playback failed", "effect", effect, "error", err)
		}
	}()
}

// renderNotes synthesizes stereo float32 little-endian PCM for the notes.
// Each note gets a short linear attack and release to avoid clicks.
func renderNotes(notes []note) []byte {
	total := 0
	for _, n := range notes {
		total += frames(n.duration)
	}
	buf := make([]byte, total*channelCount*bytesPerSample)

	i := 0
	for _, n := range notes {
		count := frames(n.duration)
		ramp := max(1, count/10)
		for f := 0; f < count; f++ {
			env := 1.0
			if f < ramp {
				env = float64(f) / float64(ramp)
			} else if f > count-ramp {
				env = float64(count-f) / float64(ramp)
			}
			sample := 0.6 * env * math.Sin(2*math.Pi*n.freq*float64(f)/sampleRate)
			putStereo(buf, i, sample)
			i++
		}
	}
	return buf
}

func frames(d time.Duration) int {
	return int(d.Seconds() * sampleRate)
}

// putStereo writes a [-1,1] sample to both channels of frame i.
func putStereo(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	off := i * channelCount * bytesPerSample
	for ch := 0; ch < channelCount; ch++ {
		o := off + ch*bytesPerSample
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}
