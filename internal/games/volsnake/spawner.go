package volsnake

import (
	"errors"
	"math/rand"
)

// ErrGridFull is returned when every cell is taken and no token can be placed.
var ErrGridFull = errors.New("volsnake: no free cell for token")

// Spawner picks token positions uniformly among the free cells of the board.
type Spawner struct {
	size        int
	rng         *rand.Rand
	maxAttempts int
}

// NewSpawner creates a spawner for a size×size board.
// maxAttempts bounds rejection sampling; zero or less selects 4*size*size.
func NewSpawner(size int, rng *rand.Rand, maxAttempts int) *Spawner {
	if maxAttempts <= 0 {
		maxAttempts = 4 * size * size
	}
	return &Spawner{
		size:        size,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Spawn returns a random cell that is neither in occupied nor equal to any of
// others. Rejection sampling runs up to maxAttempts draws; after that the free
// cells are enumerated row by row and one of them is drawn with the same rng,
// so the result stays uniform either way. ErrGridFull means nothing is free.
func (sp *Spawner) Spawn(occupied []Point, others ...Point) (Point, error) {
	for i := 0; i < sp.maxAttempts; i++ {
		p := Point{X: sp.rng.Intn(sp.size), Y: sp.rng.Intn(sp.size)}
		if !blocked(p, occupied, others) {
			return p, nil
		}
	}

	free := sp.freeCells(occupied, others)
	if len(free) == 0 {
		return Point{}, ErrGridFull
	}
	return free[sp.rng.Intn(len(free))], nil
}

// freeCells lists unblocked cells in row-major order.
func (sp *Spawner) freeCells(occupied, others []Point) []Point {
	taken := make(map[Point]bool, len(occupied)+len(others))
	for _, p := range occupied {
		taken[p] = true
	}
	for _, p := range others {
		taken[p] = true
	}

	free := make([]Point, 0, max(0, sp.size*sp.size-len(taken)))
	for y := 0; y < sp.size; y++ {
		for x := 0; x < sp.size; x++ {
			p := Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

func blocked(p Point, occupied, others []Point) bool {
	return contains(occupied, p) || contains(others, p)
}

func contains(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
