package audio

import "github.com/charmbracelet/log"

// LogSink records volume effects in the log without touching the mixer.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a log-only sink.
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Mute()       { s.logger.Info("volume effect", "effect", "mute") }
func (s *LogSink) VolumeUp()   { s.logger.Info("volume effect", "effect", "volume_up") }
func (s *LogSink) VolumeDown() { s.logger.Info("volume effect", "effect", "volume_down") }
