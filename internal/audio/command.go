// Package audio provides AudioSink implementations that change the system
// volume through the host's mixer tools, plus log-only and chime sinks.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single volume command.
const DefaultTimeout = 500 * time.Millisecond

// Runner executes an external command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes the command and folds its output into the error on failure.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := bytes.TrimSpace(out); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Commands lists the argv sequences run for each effect.
// Every effect may need several commands, run in order.
type Commands struct {
	Mute [][]string
	Up   [][]string
	Down [][]string
}

// CommandSink changes the volume by running mixer commands.
// Failures are logged and dropped; nothing is retried.
type CommandSink struct {
	name    string
	cmds    Commands
	runner  Runner
	timeout time.Duration
	logger  *log.Logger
}

// NewCommandSink creates a sink for backend name.
func NewCommandSink(name string, cmds Commands, runner Runner, timeout time.Duration, logger *log.Logger) *CommandSink {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CommandSink{
		name:    name,
		cmds:    cmds,
		runner:  runner,
		timeout: timeout,
		logger:  logger,
	}
}

// Mute silences the default output.
func (s *CommandSink) Mute() {
	s.run("mute", s.cmds.Mute)
}

// VolumeUp unmutes and raises the default output.
func (s *CommandSink) VolumeUp() {
	s.run("volume_up", s.cmds.Up)
}

// VolumeDown unmutes and lowers the default output.
func (s *CommandSink) VolumeDown() {
	s.run("volume_down", s.cmds.Down)
}

func (s *CommandSink) run(effect string, argvs [][]string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	for _, argv := range argvs {
		if err := s.runner.Run(ctx, argv[0], argv[1:]...); err != nil {
			s.logger.Warn("volume command failed",
				"backend", s.name,
				"effect", effect,
				"error", err,
			)
			return
		}
	}
	s.logger.Debug("volume changed",
		"backend", s.name,
		"effect", effect,
		"took", time.Since(start),
	)
}
