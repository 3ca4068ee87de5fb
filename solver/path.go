package solver

import (
	"errors"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// ErrIncompletePath reports a parent chain that does not lead back to
// the entrance. It indicates internal corruption and never occurs after
// a successful search.
var ErrIncompletePath = errors.New("parent chain does not reach the entrance")

// Reconstruct walks parent links backward from the exit and returns the
// entrance-to-exit coordinate sequence.
//
// The walk is bounded by the cell count so a corrupted chain cannot
// loop forever.
func Reconstruct(g *maze.Grid) ([]maze.Coordinate, error) {
	path := []maze.Coordinate{g.Exit}
	current := g.Exit
	for steps := 0; current != g.Entrance; steps++ {
		if steps > g.Width*g.Height {
			return nil, ErrIncompletePath
		}
		current = g.At(current).Parent
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
