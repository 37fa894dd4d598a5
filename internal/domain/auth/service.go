package auth

import "context"

// AuthService authenticates users and manages token lifecycles.
type AuthService interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	LoginWithGoogle(state string) string
	OAuthCallbackGoogle(ctx context.Context, code string) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context, userID string) (*MeResponse, error)
}
