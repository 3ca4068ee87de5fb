// Package mazeapi provides structures and utilities for submitting, generating and retrieving mazes.
package mazeapi

import (
	"github.com/beka-birhanu/maze-solver-api/maze"
)

// SolveRequest carries raw maze text for a one-shot solve.
type SolveRequest struct {
	Maze string `json:"maze" binding:"required"`
}

// SolveResponse is the solved path for a one-shot solve.
type SolveResponse struct {
	Path     []maze.Coordinate `json:"path"`
	Cost     int               `json:"cost"`
	Expanded int               `json:"expanded"`
}

// CreateMazeRequest carries a named maze to store under the caller.
type CreateMazeRequest struct {
	Name string `json:"name" binding:"required"`
	Maze string `json:"maze" binding:"required"`
}

// GenerateMazeRequest asks for a random solvable maze of the given cell
// dimensions.
type GenerateMazeRequest struct {
	Name   string `json:"name" binding:"required"`
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
}
