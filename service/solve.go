package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/google/uuid"
)

// SolveFunc turns maze text into a solution. It matches
// solver.SolveText, which is the default.
type SolveFunc func(text string, opts ...maze.ParseOption) (solver.Solution, error)

// Solve orchestrates parsing, caching and persistence around the
// solver core. Identical maze texts share one cached solution, keyed
// by the text's SHA-256 digest.
type Solve struct {
	mazeRepo i.MazeRepo
	cache    i.SolutionCache
	gen      i.Generator
	solve    SolveFunc
	logger   *log.Logger
}

// SolveConfig holds the dependencies for creating a Solve service.
type SolveConfig struct {
	MazeRepo i.MazeRepo
	Cache    i.SolutionCache
	Gen      i.Generator
	// Solve overrides the solver core, mainly for tests.
	Solve  SolveFunc
	Logger *log.Logger
}

// NewSolveService creates a Solve service from the config.
func NewSolveService(c *SolveConfig) (*Solve, error) {
	if c.MazeRepo == nil || c.Cache == nil || c.Gen == nil {
		return nil, errors.New("solve service needs a maze repo, a cache and a generator")
	}
	s := &Solve{
		mazeRepo: c.MazeRepo,
		cache:    c.Cache,
		gen:      c.Gen,
		solve:    c.Solve,
		logger:   c.Logger,
	}
	if s.solve == nil {
		s.solve = solver.SolveText
	}
	return s, nil
}

// SolveText solves raw maze text without persisting anything.
//
// On a cache miss the digest is locked so concurrent requests for the
// same maze, on this instance or another, compute the path only once.
func (s *Solve) SolveText(ctx context.Context, text string) (solver.Solution, error) {
	digest := textDigest(text)

	if cached, err := s.cache.Get(ctx, digest); err == nil && cached != nil {
		return *cached, nil
	}

	unlock, err := s.cache.Lock(digest)
	if err != nil {
		return solver.Solution{}, fmt.Errorf("locking maze %s: %w", digest[:8], err)
	}
	defer unlock()

	// Another holder of the lock may have solved it meanwhile.
	if cached, err := s.cache.Get(ctx, digest); err == nil && cached != nil {
		return *cached, nil
	}

	solution, err := s.solve(text)
	if err != nil {
		return solver.Solution{}, err
	}

	if err := s.cache.Set(ctx, digest, &solution); err != nil && s.logger != nil {
		s.logger.Printf("caching solution for maze %s: %v", digest[:8], err)
	}
	return solution, nil
}

// CreateMaze solves maze text and stores it under the owner.
func (s *Solve) CreateMaze(ctx context.Context, ownerID uuid.UUID, name, text string) (*dmn.MazeRecord, error) {
	grid, err := maze.Parse(text)
	if err != nil {
		return nil, err
	}

	solution, err := s.SolveText(ctx, text)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Text:      text,
		Digest:    textDigest(text),
		Width:     grid.Width,
		Height:    grid.Height,
		Path:      solution.Path,
		Cost:      solution.Cost,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.mazeRepo.Save(record); err != nil {
		return nil, err
	}
	return record, nil
}

// GenerateMaze creates a random solvable maze and stores it solved.
func (s *Solve) GenerateMaze(ctx context.Context, ownerID uuid.UUID, name string, width, height int) (*dmn.MazeRecord, error) {
	text, err := s.gen.Generate(width, height)
	if err != nil {
		return nil, err
	}
	return s.CreateMaze(ctx, ownerID, name, text)
}

// MazeByID returns a stored maze record.
func (s *Solve) MazeByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.mazeRepo.ByID(id)
}

// textDigest is the hex SHA-256 of the maze text.
func textDigest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
