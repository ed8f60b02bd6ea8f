package auth

// CredentialsRequest is the payload for both registration and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}
