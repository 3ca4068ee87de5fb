/*
Package solver finds shortest paths through parsed mazes.

The search is 4-directional A* with unit edge costs and the Manhattan
distance as heuristic. The heuristic is admissible and consistent on
such grids, so the first pop of the exit yields an optimal path.
*/
package solver

import (
	"container/heap"
	"errors"

	"github.com/beka-birhanu/maze-solver-api/maze"
)

// ErrNoPath reports a maze whose exit is unreachable from its entrance.
// It is a normal outcome, not a defect.
var ErrNoPath = errors.New("no path between entrance and exit")

// directions are the four orthogonal neighbor offsets.
var directions = []maze.Coordinate{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Solution is the outcome of a successful search.
type Solution struct {
	// Path is the ordered coordinate sequence from entrance to exit,
	// both inclusive.
	Path []maze.Coordinate `json:"path" bson:"path"`
	// Cost is the number of edges on the path, len(Path)-1.
	Cost int `json:"cost" bson:"cost"`
	// Expanded counts the cells the search expanded before finding the
	// exit.
	Expanded int `json:"expanded" bson:"expanded"`
}

// Solve runs A* over g from its entrance to its exit and reconstructs
// the shortest path.
//
// Cell cost/parent fields are updated destructively in place, so g must
// not be reused for a second solve; parse a fresh grid instead. The
// caller owns g exclusively for the duration of the call.
func Solve(g *maze.Grid) (Solution, error) {
	open := make(frontier, 0, g.Width+g.Height)
	heap.Init(&open)
	heap.Push(&open, &frontierItem{coord: g.Entrance, fcost: g.At(g.Entrance).Heuristic})

	visited := make(map[maze.Coordinate]struct{})
	expanded := 0

	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		current := g.At(item.coord)

		// A cheaper path reached this coordinate after the copy was
		// queued; the fresh copy is elsewhere in the heap.
		if item.fcost != current.Cost+current.Heuristic {
			continue
		}
		if _, done := visited[item.coord]; done {
			continue
		}

		if item.coord == g.Exit {
			path, err := Reconstruct(g)
			if err != nil {
				return Solution{}, err
			}
			return Solution{Path: path, Cost: current.Cost, Expanded: expanded}, nil
		}

		visited[item.coord] = struct{}{}
		expanded++

		for _, d := range directions {
			next := maze.Coordinate{X: item.coord.X + d.X, Y: item.coord.Y + d.Y}
			if !g.InBounds(next) {
				continue
			}
			if _, done := visited[next]; done {
				continue
			}
			cell := g.At(next)
			// The entrance is never re-entered.
			if cell.Type == maze.Wall || cell.Type == maze.Entrance {
				continue
			}

			tentative := current.Cost + 1
			if cell.Cost != 0 && tentative >= cell.Cost {
				continue
			}
			cell.Parent = item.coord
			cell.Cost = tentative
			heap.Push(&open, &frontierItem{coord: next, fcost: tentative + cell.Heuristic})
		}
	}
	return Solution{}, ErrNoPath
}

// SolveText parses maze text and solves it in one call.
func SolveText(text string, opts ...maze.ParseOption) (Solution, error) {
	grid, err := maze.Parse(text, opts...)
	if err != nil {
		return Solution{}, err
	}
	return Solve(grid)
}
