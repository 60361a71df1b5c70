package presenter

import (
	"encoding/json"

	authDTO "github.com/meettrack-team/meettrack/internal/adapter/dto/auth"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	var notificationPrefs map[string]interface{}
	if u.NotificationPreferences != nil {
		json.Unmarshal(u.NotificationPreferences, &notificationPrefs)
	}

	response := &authDTO.UserResponse{
		ID:                      u.ID.String(),
		Email:                   u.Email,
		Name:                    u.Name,
		Role:                    string(u.Role),
		EmailVerified:           u.IsEmailVerified,
		NotificationPreferences: notificationPrefs,
		LastLoginAt:             u.LastLoginAt,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}

	if u.AvatarURL != nil {
		response.AvatarURL = *u.AvatarURL
	}
	if u.OAuthProvider != nil {
		response.OAuthProvider = *u.OAuthProvider
	}

	return response
}

// ToAuthResponse converts usecase AuthResponse to DTO AuthResponse
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken:  usecaseResp.AccessToken,
		RefreshToken: usecaseResp.RefreshToken,
		ExpiresIn:    int(usecaseResp.ExpiresIn),
		TokenType:    "Bearer",
		User:         ToUserResponse(usecaseResp.User),
	}
}

// ToRefreshTokenResponse converts usecase AuthResponse to DTO RefreshTokenResponse
func ToRefreshTokenResponse(usecaseResp *auth.AuthResponse) *authDTO.RefreshTokenResponse {
	if usecaseResp == nil {
		return nil
	}
	return &authDTO.RefreshTokenResponse{
		AccessToken: usecaseResp.AccessToken,
		ExpiresIn:   int(usecaseResp.ExpiresIn),
		TokenType:   "Bearer",
	}
}
