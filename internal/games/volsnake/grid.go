package volsnake

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// noPoint never lies on the board; used when a token has no peer yet.
var noPoint = Point{X: -1, Y: -1}

// Step returns the neighbouring cell in direction d on a size×size torus.
// Leaving one edge re-enters from the opposite edge on the same row or column.
func (p Point) Step(d Direction, size int) Point {
	dx, dy := d.Delta()
	return Point{
		X: wrap(p.X+dx, size),
		Y: wrap(p.Y+dy, size),
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists every direction in declaration order.
var Directions = []Direction{DirRight, DirDown, DirLeft, DirUp}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit vector of the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
