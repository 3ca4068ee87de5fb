package identity

// AuthRequest carries the credentials for register and login.
type AuthRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the signed-in user with a fresh access token.
type AuthResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	SolvedCount int    `json:"solved_count"`
	Token       string `json:"token"`
}
