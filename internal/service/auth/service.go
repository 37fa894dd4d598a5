package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lakbayhr/ems-backend-go/internal/domain/auth"
	"github.com/lakbayhr/ems-backend-go/internal/domain/user"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/jwt"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	userRepository user.UserRepository
	jwtService     jwt.Service
	googleService  oauth.GoogleService
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, googleService oauth.GoogleService) auth.AuthService {
	return &AuthServiceImpl{
		userRepository: userRepository,
		jwtService:     jwtService,
		googleService:  googleService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userData, err := a.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if userData.PasswordHash == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !userData.IsActive {
		return nil, user.ErrUserInactive
	}

	return a.issueTokens(userData)
}

// LoginWithGoogle implements auth.AuthService.
func (a *AuthServiceImpl) LoginWithGoogle(state string) string {
	return a.googleService.RedirectURL(state)
}

// OAuthCallbackGoogle implements auth.AuthService.
func (a *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (*auth.TokenResponse, error) {
	token, err := a.googleService.VerifyToken(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code: %w", err)
	}

	info, err := a.googleService.VerifyUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google user info: %w", err)
	}
	if !info.VerifiedEmail {
		return nil, auth.ErrInvalidCredentials
	}

	userData, err := a.userRepository.GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to get user by google id: %w", err)
		}

		// First Google login for an existing email links the account.
		userData, err = a.userRepository.GetByEmail(ctx, info.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil, auth.ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to get user by email: %w", err)
		}

		userData.GoogleID = &info.GoogleID
		userData, err = a.userRepository.Update(ctx, userData)
		if err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
	}

	if !userData.IsActive {
		return nil, user.ErrUserInactive
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	userData, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.IsActive {
		return nil, user.ErrUserInactive
	}

	// Rotate: the presented token is dead once a new pair is issued.
	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokens(userData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (*auth.MeResponse, error) {
	userData, err := a.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &auth.MeResponse{
		ID:         userData.ID,
		Email:      userData.Email,
		Role:       string(userData.Role),
		EmployeeID: userData.EmployeeID,
	}, nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (*auth.TokenResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.EmployeeID, userData.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return &auth.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}
