package volsnake

import (
	"time"

	"github.com/vovakirdan/volsnake/internal/core"
)

// Gameplay constants. These are fixed at compile time.
const (
	GridSize       = 20 // Cells per side of the square board
	StartingLength = 5  // Length target after every reset
	Speed          = 10 // Ticks per second

	BlockWidth  = 2 // Terminal columns per grid cell
	BlockHeight = 1 // Terminal rows per grid cell

	hudHeight = 1
)

// Display colors.
const (
	UpColor     = core.ColorGreen
	DownColor   = core.ColorRed
	SnakeColor  = core.ColorBlue
	HeadColor   = core.ColorBrightBlue
	BorderColor = core.ColorGray
)

// TickInterval returns the fixed period between two steps.
func TickInterval() time.Duration {
	return time.Second / Speed
}

// BoardWidth returns the width of the bordered board in terminal columns.
func BoardWidth() int {
	return GridSize*BlockWidth + 2
}

// BoardHeight returns the height of the bordered board in terminal rows.
func BoardHeight() int {
	return GridSize*BlockHeight + 2
}

// RequiredScreen returns the minimum screen size that fits HUD and board.
func RequiredScreen() (w, h int) {
	return BoardWidth(), BoardHeight() + hudHeight
}
