package i

import (
	"context"

	"github.com/beka-birhanu/maze-solver-api/solver"
)

// SolutionCache stores solved paths keyed by the maze text digest.
type SolutionCache interface {
	// Get returns the cached solution for the digest, or nil on a miss.
	Get(ctx context.Context, digest string) (*solver.Solution, error)

	// Set stores the solution under the digest.
	Set(ctx context.Context, digest string, solution *solver.Solution) error

	// Lock takes a distributed lock for the digest so only one instance
	// solves a given maze at a time. The returned function releases it.
	Lock(digest string) (func(), error)
}
