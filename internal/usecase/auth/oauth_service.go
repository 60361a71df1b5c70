package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meettrack-team/meettrack/internal/domain/entities"
	"github.com/meettrack-team/meettrack/internal/domain/repositories"
	"github.com/meettrack-team/meettrack/internal/infrastructure/external/oauth"
	"github.com/meettrack-team/meettrack/pkg/jwt"
)

// OAuthService handles OAuth authentication
type OAuthService struct {
	userRepo     repositories.UserRepository
	sessionRepo  repositories.SessionRepository
	google       *oauth.GoogleProvider
	stateManager *oauth.StateManager
	jwtManager   *jwt.Manager
}

// NewOAuthService creates a new OAuth service
func NewOAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	google *oauth.GoogleProvider,
	stateManager *oauth.StateManager,
	jwtManager *jwt.Manager,
) *OAuthService {
	return &OAuthService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		google:       google,
		stateManager: stateManager,
		jwtManager:   jwtManager,
	}
}

// GoogleAuthURLResponse represents the response for auth URL request
type GoogleAuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GetGoogleAuthURL generates Google OAuth URL
func (s *OAuthService) GetGoogleAuthURL(ctx context.Context) (*GoogleAuthURLResponse, error) {
	state, err := s.stateManager.GenerateState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	return &GoogleAuthURLResponse{
		URL:   s.google.GetAuthURL(state),
		State: state,
	}, nil
}

// GoogleCallbackRequest represents the callback request
type GoogleCallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.User `json:"user"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresIn    int64          `json:"expires_in"`
	SessionID    string         `json:"session_id,omitempty"`
}

// HandleGoogleCallback handles the OAuth callback from Google
func (s *OAuthService) HandleGoogleCallback(ctx context.Context, req *GoogleCallbackRequest) (*AuthResponse, error) {
	// States are one-time use
	if !s.stateManager.ValidateState(ctx, req.State) {
		return nil, entities.ErrOAuthStateMismatch
	}

	token, err := s.google.ExchangeCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	googleUser, err := s.google.GetUserInfo(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	// Find or create user
	user, err := s.userRepo.FindByOAuth(ctx, "google", googleUser.ID)
	switch {
	case err == nil:
		user.UpdateLastLogin()
		user.AvatarURL = &googleUser.Picture
		if token.RefreshToken != "" {
			user.OAuthRefreshToken = &token.RefreshToken
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	case err == entities.ErrUserNotFound:
		// Link to an existing account with the same email, else create
		existingUser, findErr := s.userRepo.FindByEmail(ctx, googleUser.Email)
		if findErr == nil {
			provider := "google"
			existingUser.OAuthProvider = &provider
			existingUser.OAuthID = &googleUser.ID
			existingUser.AvatarURL = &googleUser.Picture
			if token.RefreshToken != "" {
				existingUser.OAuthRefreshToken = &token.RefreshToken
			}
			if err := s.userRepo.Update(ctx, existingUser); err != nil {
				return nil, fmt.Errorf("failed to link accounts: %w", err)
			}
			user = existingUser
		} else {
			user = entities.NewOAuthUser(googleUser.Email, googleUser.Name, "google", googleUser.ID)
			user.AvatarURL = &googleUser.Picture
			if token.RefreshToken != "" {
				user.OAuthRefreshToken = &token.RefreshToken
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to create user: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := entities.NewSession(user.ID, refreshToken, time.Now().Add(s.jwtManager.GetRefreshExpiry()))
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:    session.ID.String(),
	}, nil
}

// RefreshAccessToken refreshes the access token using refresh token
func (s *OAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	session, err := s.sessionRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	if !session.IsValid() {
		return nil, entities.ErrSessionExpired
	}

	// Non-fatal bookkeeping
	_ = s.sessionRepo.UpdateLastUsed(ctx, session.ID)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	newAccessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		User:        user,
		AccessToken: newAccessToken,
		ExpiresIn:   int64(s.jwtManager.GetAccessExpiry().Seconds()),
	}, nil
}

// ValidateSession validates a JWT access token and returns the user
func (s *OAuthService) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, entities.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, entities.ErrUnauthorized
	}

	return user, nil
}

// Logout revokes the session behind a refresh token
func (s *OAuthService) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.sessionRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		return entities.ErrSessionNotFound
	}
	return s.sessionRepo.Revoke(ctx, session.ID)
}

// LogoutAll revokes all sessions for a user
func (s *OAuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.RevokeAllByUserID(ctx, userID)
}
