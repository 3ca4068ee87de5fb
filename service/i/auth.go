package i

import (
	dmn "github.com/beka-birhanu/maze-solver-api/domain"
)

// Authenticator manages user registration and sign-in.
type Authenticator interface {
	// Register creates a user from a username and plain password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the user with a fresh
	// access token.
	SignIn(username, password string) (*dmn.User, string, error)
}
