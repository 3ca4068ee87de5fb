package solver

import (
	"testing"

	"github.com/beka-birhanu/maze-solver-api/generator"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/stretchr/testify/assert"
)

const crossMaze = `-#-
---
-#-`

func TestSolve(t *testing.T) {
	t.Run("finds a path through open cells", func(t *testing.T) {
		solution, err := SolveText(crossMaze)
		assert.NoError(t, err)

		grid, err := maze.Parse(crossMaze)
		assert.NoError(t, err)

		assertValidPath(t, grid, solution)
		// Around the center wall: entrance, down, across, up to the exit.
		assert.Equal(t, 4, solution.Cost)
	})

	t.Run("walks a corridor end to end", func(t *testing.T) {
		corridor := "#-#\n#-#\n#-#\n#-#\n#-#"
		solution, err := SolveText(corridor)
		assert.NoError(t, err)

		assert.Len(t, solution.Path, 5)
		assert.Equal(t, 4, solution.Cost)
		for i, coord := range solution.Path {
			assert.Equal(t, maze.Coordinate{X: 1, Y: i}, coord)
		}
	})

	t.Run("reports unreachable exits", func(t *testing.T) {
		walledOff := "#-#\n###\n#-#"
		_, err := SolveText(walledOff)
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("propagates parse failures", func(t *testing.T) {
		_, err := SolveText("-#-\n--\n-#-")
		assert.ErrorIs(t, err, maze.ErrRaggedRows)
	})

	t.Run("is deterministic across fresh parses", func(t *testing.T) {
		first, err := SolveText(crossMaze)
		assert.NoError(t, err)
		second, err := SolveText(crossMaze)
		assert.NoError(t, err)

		assert.Equal(t, first.Path, second.Path)
		assert.Equal(t, first.Cost, second.Cost)
	})
}

// TestSolveMatchesBreadthFirst cross-checks A* path lengths against a
// plain breadth-first search.
func TestSolveMatchesBreadthFirst(t *testing.T) {
	texts := map[string]string{
		"cross": crossMaze,
		"room": `#-######
#------#
#------#
######-#`,
		"spiral": `#-#####
#-----#
#####-#
#-----#
#-#####`,
	}

	gen := generator.NewSeeded(42)
	for i := 0; i < 3; i++ {
		text, err := gen.Generate(8, 6)
		assert.NoError(t, err)
		texts[string(rune('a'+i))+" generated"] = text
	}

	for name, text := range texts {
		t.Run(name, func(t *testing.T) {
			grid, err := maze.Parse(text)
			assert.NoError(t, err)
			want, reachable := breadthFirstDistance(grid)
			assert.True(t, reachable, "test mazes must be solvable")

			solution, err := SolveText(text)
			assert.NoError(t, err)
			assert.Equal(t, want, solution.Cost)

			assertValidPath(t, grid, solution)
		})
	}
}

func TestReconstruct(t *testing.T) {
	t.Run("detects a broken parent chain", func(t *testing.T) {
		// An unsolved grid whose entrance is away from the zero
		// coordinate: every parent link still holds the sentinel, so
		// backtracking can never reach the entrance.
		grid, err := maze.Parse("#-#\n#-#\n#-#")
		assert.NoError(t, err)

		_, err = Reconstruct(grid)
		assert.ErrorIs(t, err, ErrIncompletePath)
	})
}

// assertValidPath checks the structural path invariants: endpoints,
// 4-adjacency, no walls, and cost agreeing with length.
func assertValidPath(t *testing.T, grid *maze.Grid, solution Solution) {
	t.Helper()

	assert.NotEmpty(t, solution.Path)
	assert.Equal(t, grid.Entrance, solution.Path[0])
	assert.Equal(t, grid.Exit, solution.Path[len(solution.Path)-1])
	assert.Equal(t, solution.Cost, len(solution.Path)-1)

	endpointVisits := 0
	for idx, coord := range solution.Path {
		assert.True(t, grid.InBounds(coord))
		assert.NotEqual(t, maze.Wall, grid.At(coord).Type)
		if coord == grid.Entrance || coord == grid.Exit {
			endpointVisits++
		}
		if idx > 0 {
			assert.Equal(t, 1, coord.ManhattanTo(solution.Path[idx-1]))
		}
	}
	assert.Equal(t, 2, endpointVisits,
		"entrance and exit must each appear exactly once")
}

// breadthFirstDistance returns the shortest edge count from entrance to
// exit, ignoring the heuristic entirely.
func breadthFirstDistance(grid *maze.Grid) (int, bool) {
	type queued struct {
		coord maze.Coordinate
		dist  int
	}
	offsets := []maze.Coordinate{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

	seen := map[maze.Coordinate]struct{}{grid.Entrance: {}}
	queue := []queued{{coord: grid.Entrance}}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		if head.coord == grid.Exit {
			return head.dist, true
		}
		for _, d := range offsets {
			next := maze.Coordinate{X: head.coord.X + d.X, Y: head.coord.Y + d.Y}
			if !grid.InBounds(next) {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			if grid.At(next).Type == maze.Wall {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, queued{coord: next, dist: head.dist + 1})
		}
	}
	return 0, false
}
