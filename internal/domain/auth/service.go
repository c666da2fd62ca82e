package auth

import (
	"context"
)

// AuthService handles employee authentication.
type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string, sessionReq SessionTrackingRequest) (TokenResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
