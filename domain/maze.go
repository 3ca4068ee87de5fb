package domain

import (
	"time"

	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/google/uuid"
)

// MazeRecord is a stored maze together with its solution.
type MazeRecord struct {
	ID      uuid.UUID `bson:"_id" json:"id"`
	OwnerID uuid.UUID `bson:"ownerId" json:"owner_id"`
	Name    string    `bson:"name" json:"name"`
	// Text is the raw maze as submitted, '-' open and '#' wall.
	Text string `bson:"text" json:"text"`
	// Digest is the hex SHA-256 of Text; identical mazes share it.
	Digest string `bson:"digest" json:"digest"`
	Width  int    `bson:"width" json:"width"`
	Height int    `bson:"height" json:"height"`
	// Path is the shortest entrance-to-exit route found by the solver.
	Path      []maze.Coordinate `bson:"path" json:"path"`
	Cost      int               `bson:"cost" json:"cost"`
	CreatedAt time.Time         `bson:"createdAt" json:"created_at"`
}
