package audio

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/vovakirdan/volsnake/internal/games/volsnake"
	"github.com/vovakirdan/volsnake/internal/registry"
)

// Backend names.
const (
	BackendAuto      = "auto"
	BackendPactl     = "pactl"
	BackendWpctl     = "wpctl"
	BackendAmixer    = "amixer"
	BackendOsascript = "osascript"
	BackendLog       = "log"
	BackendChime     = "chime"
)

// detectOrder is the preference order used by Detect.
var detectOrder = []string{BackendWpctl, BackendPactl, BackendAmixer, BackendOsascript}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// PactlCommands drives PulseAudio or PipeWire through pactl.
func PactlCommands(step int) Commands {
	const sink = "@DEFAULT_SINK@"
	return Commands{
		Mute: [][]string{{"pactl", "set-sink-mute", sink, "1"}},
		Up: [][]string{
			{"pactl", "set-sink-mute", sink, "0"},
			{"pactl", "set-sink-volume", sink, fmt.Sprintf("+%d%%", step)},
		},
		Down: [][]string{
			{"pactl", "set-sink-mute", sink, "0"},
			{"pactl", "set-sink-volume", sink, fmt.Sprintf("-%d%%", step)},
		},
	}
}

// WpctlCommands drives PipeWire through wpctl, capped at 100%.
func WpctlCommands(step int) Commands {
	const sink = "@DEFAULT_AUDIO_SINK@"
	return Commands{
		Mute: [][]string{{"wpctl", "set-mute", sink, "1"}},
		Up: [][]string{
			{"wpctl", "set-mute", sink, "0"},
			{"wpctl", "set-volume", "-l", "1.0", sink, fmt.Sprintf("%d%%+", step)},
		},
		Down: [][]string{
			{"wpctl", "set-mute", sink, "0"},
			{"wpctl", "set-volume", sink, fmt.Sprintf("%d%%-", step)},
		},
	}
}

// AmixerCommands drives the ALSA Master control.
func AmixerCommands(step int) Commands {
	return Commands{
		Mute: [][]string{{"amixer", "-q", "sset", "Master", "mute"}},
		Up:   [][]string{{"amixer", "-q", "sset", "Master", fmt.Sprintf("%d%%+", step), "unmute"}},
		Down: [][]string{{"amixer", "-q", "sset", "Master", fmt.Sprintf("%d%%-", step), "unmute"}},
	}
}

// OsascriptCommands drives the macOS output volume (0-100).
func OsascriptCommands(step int) Commands {
	adjust := func(sign string) []string {
		return []string{
			"osascript",
			"-e", "set volume output muted false",
			"-e", "set volume output volume ((output volume of (get volume settings)) " + sign + " " + strconv.Itoa(step) + ")",
		}
	}
	return Commands{
		Mute: [][]string{{"osascript", "-e", "set volume output muted true"}},
		Up:   [][]string{adjust("+")},
		Down: [][]string{adjust("-")},
	}
}

func commandBackend(name, title string, cmds func(step int) Commands) registry.Backend {
	return registry.Backend{
		Name:   name,
		Title:  title,
		Binary: name,
		Factory: func(s registry.Settings) (volsnake.AudioSink, error) {
			return NewCommandSink(name, cmds(s.StepPercent), ExecRunner{}, s.Timeout, s.Logger), nil
		},
	}
}

func init() {
	registry.Register(commandBackend(BackendPactl, "PulseAudio / PipeWire (pactl)", PactlCommands))
	registry.Register(commandBackend(BackendWpctl, "PipeWire (wpctl)", WpctlCommands))
	registry.Register(commandBackend(BackendAmixer, "ALSA mixer (amixer)", AmixerCommands))
	registry.Register(commandBackend(BackendOsascript, "macOS output volume (osascript)", OsascriptCommands))
	registry.Register(registry.Backend{
		Name:  BackendLog,
		Title: "Log volume events only (dry run)",
		Factory: func(s registry.Settings) (volsnake.AudioSink, error) {
			return NewLogSink(s.Logger), nil
		},
	})
	registry.Register(registry.Backend{
		Name:  BackendChime,
		Title: "Play a tone per event instead of changing volume",
		Factory: func(s registry.Settings) (volsnake.AudioSink, error) {
			return NewChimeSink(s.ChimeVolume, s.Logger)
		},
	})
}

// Available reports whether the backend can run on this machine.
func Available(b registry.BackendInfo) bool {
	if b.Binary == "" {
		return true
	}
	_, err := lookPath(b.Binary)
	return err == nil
}

// Detect returns the first mixer backend found on PATH, or the log backend.
func Detect() string {
	for _, name := range detectOrder {
		if _, err := lookPath(name); err == nil {
			return name
		}
	}
	return BackendLog
}

// Open resolves name (auto-detecting when it is "auto") and creates the sink.
// With chime set, a chime sink is played alongside the volume backend.
func Open(name string, chime bool, s registry.Settings) (volsnake.AudioSink, string, error) {
	if name == "" || name == BackendAuto {
		name = Detect()
	}

	sink, err := registry.Create(name, s)
	if err != nil {
		return nil, name, err
	}
	if !chime || name == BackendChime {
		return sink, name, nil
	}

	bell, err := registry.Create(BackendChime, s)
	if err != nil {
		// The volume backend still works; run without the chime.
		if s.Logger != nil {
			s.Logger.Warn("chime unavailable", "error", err)
		}
		return sink, name, nil
	}
	return Tee{sink, bell}, name, nil
}
