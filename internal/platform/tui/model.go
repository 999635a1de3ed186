package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/volsnake/internal/core"
	"github.com/vovakirdan/volsnake/internal/games/volsnake"
	"github.com/vovakirdan/volsnake/internal/logging"
)

// frame caches the last rendered view. It is shared between copies of
// Model so View can skip rendering when nothing asked for a redraw.
type frame struct {
	view    string
	renders int
}

// Model is the Bubble Tea model for a volsnake session.
type Model struct {
	game     *volsnake.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	showHelp bool
	interval time.Duration

	baseLogger *log.Logger
	logger     *log.Logger // baseLogger tagged with the current run
	runID      string

	frame    *frame
	quitting bool
	err      error
}

// NewModel creates a model for a game that has already been reset.
func NewModel(game *volsnake.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.Default()
	}
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		baseLogger: logger,
		frame:      &frame{},
		interval:   volsnake.TickInterval(),
	}
	if cfg.TickRate > 0 {
		m.interval = time.Second / time.Duration(cfg.TickRate)
	}
	m.newRun()
	m.layout(cfg.ScreenW, cfg.ScreenH)
	return m
}

// newRun tags subsequent log lines with a fresh run ID.
func (m *Model) newRun() {
	m.logger, m.runID = logging.WithRun(m.baseLogger)
}

// layout sizes the screen for a w×h terminal, reserving rows for the help
// footer only when the board still fits above it. Full help falls back to
// the short form when it would not fit.
func (m *Model) layout(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.help.Width = w

	_, reqH := volsnake.RequiredScreen()
	rows := lipgloss.Height(m.help.View(m.keys))
	if m.help.ShowAll && h-rows < reqH {
		m.help.ShowAll = false
		rows = lipgloss.Height(m.help.View(m.keys))
	}
	m.showHelp = h-rows >= reqH
	if m.showHelp {
		h -= rows
	}
	m.screen.Resize(w, h)
	m.game.Resize(w, h)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.config.Seed)
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey applies the key's action immediately, in arrival order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if accepted := m.game.Apply(action); !accepted && action.IsDirectional() {
		m.logger.Debug("turn ignored", "action", action, "heading", m.game.Session().Direction())
	}

	if action == core.ActionTerminate {
		m.logger.Info("session terminated", "stats", fmt.Sprintf("%+v", m.game.Session().Stats()))
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the session and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()
	outcome, err := m.game.Tick()
	if err != nil {
		m.logger.Error("simulation failed", "outcome", outcome, "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	switch outcome {
	case volsnake.OutcomeHalted:
		return m, nil
	case volsnake.OutcomeSelfCollided:
		st := m.game.Session().Stats()
		m.logger.Info("self collision, board reset", "resets", st.Resets, "best", st.BestLength)
		m.newRun()
	case volsnake.OutcomeAteUp, volsnake.OutcomeAteDown, volsnake.OutcomeAteBoth:
		m.logger.Debug("token eaten", "outcome", outcome, "length", m.game.Session().Length())
	}
	if took := time.Since(start); took > m.interval {
		m.logger.Warn("slow tick", "took", took)
	}

	return m, tickCmd(m.interval)
}

// View renders the game, reusing the cached frame when no redraw is pending.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Dirty() || m.frame.renders == 0 {
		m.game.Render(m.screen)
		view := RenderScreen(m.screen)
		if m.showHelp {
			view += "\n" + m.help.View(m.keys)
		}
		m.frame.view = view
		m.frame.renders++
	}
	return m.frame.view
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run resets the game and drives it until the player quits.
func Run(game *volsnake.Game, logger *log.Logger, cfg core.RuntimeConfig) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(game, logger, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
