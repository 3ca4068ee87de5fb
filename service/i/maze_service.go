package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// MazeSolver manages solving, storing and generating mazes.
type MazeSolver interface {
	// SolveText solves raw maze text without persisting anything.
	SolveText(ctx context.Context, text string) (solver.Solution, error)

	// CreateMaze solves maze text and stores it under the owner.
	CreateMaze(ctx context.Context, ownerID uuid.UUID, name, text string) (*dmn.MazeRecord, error)

	// GenerateMaze creates a random solvable maze, solves it and stores
	// it under the owner.
	GenerateMaze(ctx context.Context, ownerID uuid.UUID, name string, width, height int) (*dmn.MazeRecord, error)

	// MazeByID returns a stored maze record.
	MazeByID(id uuid.UUID) (*dmn.MazeRecord, error)
}

// Generator produces random maze text.
type Generator interface {
	// Generate returns solvable maze text for a width x height cell maze.
	Generate(width, height int) (string, error)
}
