package auth

// RefreshTokenRequest represents the request to refresh an access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents the request to revoke a session
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
