package auth

import "time"

// AuthURLResponse represents the OAuth authorization URL response
type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID                      string                 `json:"id"`
	Email                   string                 `json:"email"`
	Name                    string                 `json:"name"`
	Role                    string                 `json:"role"`
	AvatarURL               string                 `json:"avatar_url,omitempty"`
	OAuthProvider           string                 `json:"oauth_provider,omitempty"`
	EmailVerified           bool                   `json:"email_verified"`
	NotificationPreferences map[string]interface{} `json:"notification_preferences,omitempty"`
	LastLoginAt             *time.Time             `json:"last_login_at,omitempty"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
}

// AuthResponse represents a completed authentication
type AuthResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresIn    int           `json:"expires_in"`
	TokenType    string        `json:"token_type"`
	User         *UserResponse `json:"user"`
}

// RefreshTokenResponse represents a refreshed access token
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// MessageResponse represents a simple acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}
