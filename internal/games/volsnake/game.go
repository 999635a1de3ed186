// Package volsnake implements a snake game whose tokens drive the system
// volume: the green token turns it up, the red token turns it down, and
// biting the snake's own body mutes it and starts over.
package volsnake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/volsnake/internal/core"
)

// Game binds a Session to a screen: it maps actions, tracks redraw requests
// and renders the board.
type Game struct {
	session *Session
	sink    AudioSink

	screenW  int
	screenH  int
	tooSmall bool
	dirty    bool
}

// New creates a game that sends volume effects to sink.
func New(sink AudioSink) *Game {
	return &Game{sink: sink}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "volsnake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Volume Snake"
}

// Reset starts a fresh session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	session, err := NewSession(Options{
		Size:        GridSize,
		StartLength: StartingLength,
		Rand:        rand.New(rand.NewSource(cfg.Seed)),
		Sink:        g.sink,
		Redrawer:    g,
	})
	if err != nil {
		return err
	}
	g.session = session
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records the screen size and whether the board still fits.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := RequiredScreen()
	g.tooSmall = w < reqW || h < reqH
	g.dirty = true
}

// Session exposes the underlying state.
func (g *Game) Session() *Session {
	return g.session
}

// Tick advances the session by one step.
func (g *Game) Tick() (Outcome, error) {
	return g.session.Step()
}

// Apply routes an input action to the session.
// Reports whether the action changed anything.
func (g *Game) Apply(a core.Action) bool {
	switch a {
	case core.ActionUp:
		return g.session.Turn(DirUp)
	case core.ActionDown:
		return g.session.Turn(DirDown)
	case core.ActionLeft:
		return g.session.Turn(DirLeft)
	case core.ActionRight:
		return g.session.Turn(DirRight)
	case core.ActionTerminate:
		g.session.Terminate()
		return true
	}
	return false
}

// RequestRedraw marks the rendered frame as stale.
func (g *Game) RequestRedraw() {
	g.dirty = true
}

// Dirty reports whether a redraw was requested since the last Render.
func (g *Game) Dirty() bool {
	return g.dirty
}

// Render draws the current state to the screen and clears the redraw flag.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.dirty = false

	g.renderHUD(dst)

	if g.tooSmall {
		reqW, reqH := RequiredScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", reqW, reqH))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, BorderColor)

	// Tokens first so the snake covers them, like the eat frame expects.
	g.renderBlock(dst, board, g.session.UpToken(), UpColor)
	g.renderBlock(dst, board, g.session.DownToken(), DownColor)

	body := g.session.Body()
	for i, p := range body {
		color := SnakeColor
		if i == len(body)-1 {
			color = HeadColor
		}
		g.renderBlock(dst, board, p, color)
	}
}

// boardRect returns the bordered board area, centered horizontally under the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	x := core.Clamp((dst.Width()-BoardWidth())/2, 0, dst.Width())
	return core.NewRect(x, hudHeight, BoardWidth(), BoardHeight())
}

func (g *Game) renderBlock(dst *core.Screen, board core.Rect, p Point, color core.Color) {
	x0 := board.X + 1 + p.X*BlockWidth
	y0 := board.Y + 1 + p.Y*BlockHeight
	for dy := 0; dy < BlockHeight; dy++ {
		for dx := 0; dx < BlockWidth; dx++ {
			dst.SetColored(x0+dx, y0+dy, '█', color)
		}
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.session.Stats()
	x := 1
	x = drawSegment(dst, x, " Volume Snake ", core.ColorWhite)
	x = drawSegment(dst, x, fmt.Sprintf(" len %d/%d ", len(g.session.Body()), g.session.Length()), core.ColorDefault)
	x = drawSegment(dst, x, fmt.Sprintf(" ▲ %d ", st.VolumeUps), UpColor)
	x = drawSegment(dst, x, fmt.Sprintf(" ▼ %d ", st.VolumeDowns), DownColor)
	x = drawSegment(dst, x, fmt.Sprintf(" mute %d ", st.Mutes), core.ColorYellow)
	drawSegment(dst, x, fmt.Sprintf(" best %d ", st.BestLength), core.ColorDefault)
}

func drawSegment(dst *core.Screen, x int, text string, color core.Color) int {
	dst.DrawTextColored(x, 0, text, color)
	return x + len([]rune(text))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len(line1), len(line2)) + 4
	box := dst.Bounds().Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
