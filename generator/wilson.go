/*
Package generator produces random rectangular mazes as '-'/'#' text.

Layouts are carved with Wilson's algorithm, which yields uniformly
random perfect mazes: every cell is reachable from every other by
exactly one route, so every generated maze is solvable.
*/
package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const maxDimension = 50

type position struct {
	row int
	col int
}

type move struct {
	from      position
	to        position
	direction string
}

// directions are ordered so a seeded generator replays the same walks.
var directions = []struct {
	name  string
	delta position
}{
	{name: "North", delta: position{row: -1, col: 0}},
	{name: "South", delta: position{row: 1, col: 0}},
	{name: "East", delta: position{row: 0, col: 1}},
	{name: "West", delta: position{row: 0, col: -1}},
}

// cell tracks which of its four walls are still standing.
type cell struct {
	northWall bool
	southWall bool
	eastWall  bool
	westWall  bool
}

// Wilson generates mazes from its own random source.
type Wilson struct {
	rand *rand.Rand
}

// New returns a generator seeded from the clock.
func New() *Wilson {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a generator with a fixed seed, for reproducible
// layouts.
func NewSeeded(seed int64) *Wilson {
	return &Wilson{rand: rand.New(rand.NewSource(seed))}
}

// Generate carves a width x height cell maze and renders it as maze
// text with one entrance and one exit opening on the boundary.
func (w *Wilson) Generate(width, height int) (string, error) {
	if min(width, height) <= 0 || max(width, height) > maxDimension {
		return "", fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
		for j := range grid[i] {
			grid[i][j] = cell{northWall: true, southWall: true, eastWall: true, westWall: true}
		}
	}
	w.carve(grid, width, height)
	return render(grid, width, height), nil
}

// carve runs Wilson's loop-erased random walks until every cell has
// been joined to the maze.
func (w *Wilson) carve(grid [][]cell, width, height int) {
	visited := make(map[position]struct{})
	visited[w.randomPosition(width, height)] = struct{}{}

	for len(visited) < width*height {
		for pos, step := range w.randomWalk(visited, width, height) {
			openWall(grid, step)
			visited[pos] = struct{}{}
		}
	}
}

// randomWalk wanders from an unvisited cell until it hits the visited
// region, remembering only the last exit taken from each touched cell.
// Keeping just the last exit erases the loops the walk made, so every
// touched cell ends up with a single passage toward the visited region.
func (w *Wilson) randomWalk(visited map[position]struct{}, width, height int) map[position]move {
	start := w.randomUnvisitedPosition(visited, width, height)
	visits := make(map[position]move)
	pos := start

	for {
		moves := neighbors(pos, width, height)
		next := moves[w.rand.Intn(len(moves))]
		visits[pos] = next
		if _, ok := visited[next.to]; ok {
			break
		}
		pos = next.to
	}
	return visits
}

func (w *Wilson) randomPosition(width, height int) position {
	return position{row: w.rand.Intn(height), col: w.rand.Intn(width)}
}

func (w *Wilson) randomUnvisitedPosition(visited map[position]struct{}, width, height int) position {
	for {
		pos := w.randomPosition(width, height)
		if _, ok := visited[pos]; !ok {
			return pos
		}
	}
}

func neighbors(pos position, width, height int) []move {
	var result []move
	for _, d := range directions {
		next := position{row: pos.row + d.delta.row, col: pos.col + d.delta.col}
		if next.row >= 0 && next.row < height && next.col >= 0 && next.col < width {
			result = append(result, move{from: pos, to: next, direction: d.name})
		}
	}
	return result
}

func openWall(grid [][]cell, m move) {
	switch m.direction {
	case "North":
		grid[m.from.row][m.from.col].northWall = false
		grid[m.to.row][m.to.col].southWall = false
	case "South":
		grid[m.from.row][m.from.col].southWall = false
		grid[m.to.row][m.to.col].northWall = false
	case "East":
		grid[m.from.row][m.from.col].eastWall = false
		grid[m.to.row][m.to.col].westWall = false
	case "West":
		grid[m.from.row][m.from.col].westWall = false
		grid[m.to.row][m.to.col].eastWall = false
	}
}

// render draws the cell maze as (2*height+1) x (2*width+1) runes and
// carves the entrance above the top-left cell and the exit below the
// bottom-right cell.
func render(grid [][]cell, width, height int) string {
	rows := make([][]rune, 2*height+1)
	for i := range rows {
		rows[i] = []rune(strings.Repeat("#", 2*width+1))
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			rows[2*r+1][2*c+1] = '-'
			if !grid[r][c].southWall && r+1 < height {
				rows[2*r+2][2*c+1] = '-'
			}
			if !grid[r][c].eastWall && c+1 < width {
				rows[2*r+1][2*c+2] = '-'
			}
		}
	}

	rows[0][1] = '-'
	rows[2*height][2*width-1] = '-'

	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
