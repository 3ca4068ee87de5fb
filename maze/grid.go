/*
Package maze parses rectangular text mazes into grids of typed cells.

A maze is a block of rows built from '-' (open) and '#' (wall) runes.
Whitespace is stripped and any other rune is dropped before
classification. By default the first boundary opening found in row-major
order becomes the entrance and the second becomes the exit; explicit
entrance/exit marker runes can be configured instead.
*/
package maze

import (
	"errors"
	"strings"
)

const (
	openRune = '-'
	wallRune = '#'
)

var (
	// ErrEmptyMaze reports maze text with no usable rows.
	ErrEmptyMaze = errors.New("maze text is empty")
	// ErrRaggedRows reports rows of unequal length.
	ErrRaggedRows = errors.New("maze rows have unequal lengths")
	// ErrNoOpenings reports a maze without a usable entrance/exit pair.
	ErrNoOpenings = errors.New("maze needs an entrance and an exit opening")
	// ErrDuplicateMarker reports more than one entrance or exit marker.
	ErrDuplicateMarker = errors.New("maze has more than one entrance or exit marker")
)

// Grid owns the full rectangular cell array for one maze.
// Cells are stored row-major and indexed by row*Width + column.
// The search mutates cell cost/parent fields in place; the grid does not
// otherwise change shape after Parse.
type Grid struct {
	Width    int
	Height   int
	Cells    []Cell
	Entrance Coordinate
	Exit     Coordinate
}

// At returns the cell at c. The coordinate must be in bounds.
func (g *Grid) At(c Coordinate) *Cell {
	return &g.Cells[c.Y*g.Width+c.X]
}

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

type parseOptions struct {
	entranceMarker rune
	exitMarker     rune
}

// ParseOption adjusts how maze text is interpreted.
type ParseOption func(*parseOptions)

// WithEntranceMarker makes cells carrying r the entrance instead of the
// first boundary opening. Must be paired with WithExitMarker.
func WithEntranceMarker(r rune) ParseOption {
	return func(o *parseOptions) { o.entranceMarker = r }
}

// WithExitMarker makes cells carrying r the exit instead of the second
// boundary opening. Must be paired with WithEntranceMarker.
func WithExitMarker(r rune) ParseOption {
	return func(o *parseOptions) { o.exitMarker = r }
}

// Parse builds a Grid from maze text.
//
// Each line is reduced to its meaningful runes ('-', '#' and any
// configured markers); lines left empty by that reduction are skipped.
// All remaining rows must share the length of the first one.
func Parse(text string, opts ...ParseOption) (*Grid, error) {
	var options parseOptions
	for _, opt := range opts {
		opt(&options)
	}

	rows, err := normalizeRows(text, &options)
	if err != nil {
		return nil, err
	}

	grid := &Grid{
		Width:  len(rows[0]),
		Height: len(rows),
		Cells:  make([]Cell, 0, len(rows[0])*len(rows)),
	}

	if err := grid.classify(rows, &options); err != nil {
		return nil, err
	}

	// The exit is known only after the scan, so the heuristic is filled
	// in a second pass.
	for i := range grid.Cells {
		if grid.Cells[i].Type != Wall {
			grid.Cells[i].Heuristic = grid.Cells[i].Coordinate.ManhattanTo(grid.Exit)
		}
	}
	return grid, nil
}

// normalizeRows strips whitespace and foreign runes from every line and
// validates the rectangle.
func normalizeRows(text string, options *parseOptions) ([][]rune, error) {
	var rows [][]rune
	for _, line := range strings.Split(text, "\n") {
		var row []rune
		for _, r := range line {
			if r == openRune || r == wallRune || (options.entranceMarker != 0 && r == options.entranceMarker) || (options.exitMarker != 0 && r == options.exitMarker) {
				row = append(row, r)
			}
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyMaze
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, ErrRaggedRows
		}
	}
	return rows, nil
}

// classify populates the cell array and locates the endpoints.
func (g *Grid) classify(rows [][]rune, options *parseOptions) error {
	markers := options.entranceMarker != 0 || options.exitMarker != 0
	foundEntrance, foundExit := false, false

	for y, row := range rows {
		for x, r := range row {
			coord := Coordinate{X: x, Y: y}
			cellType := Path
			switch {
			case r == wallRune:
				cellType = Wall
			case markers && r == options.entranceMarker:
				cellType = Entrance
			case markers && r == options.exitMarker:
				cellType = Exit
			case !markers && g.onBoundary(coord):
				// Positional rule: first boundary opening in row-major
				// order is the entrance, the second is the exit. Later
				// openings stay ordinary path cells.
				if !foundEntrance {
					cellType = Entrance
				} else if !foundExit {
					cellType = Exit
				}
			}

			switch cellType {
			case Entrance:
				if foundEntrance {
					return ErrDuplicateMarker
				}
				foundEntrance = true
				g.Entrance = coord
			case Exit:
				if foundExit {
					return ErrDuplicateMarker
				}
				foundExit = true
				g.Exit = coord
			}
			g.Cells = append(g.Cells, Cell{Type: cellType, Coordinate: coord})
		}
	}

	if !foundEntrance || !foundExit {
		return ErrNoOpenings
	}
	return nil
}

func (g *Grid) onBoundary(c Coordinate) bool {
	return c.Y == 0 || c.Y == g.Height-1 || c.X == 0 || c.X == g.Width-1
}
