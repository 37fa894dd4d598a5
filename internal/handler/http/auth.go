package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/auth"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/response"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/jwt"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService   auth.AuthService
	jwtService    jwt.Service
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(authService auth.AuthService, jwtService jwt.Service, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &authHandlerImpl{
		authService:   authService,
		jwtService:    jwtService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeTokens(w, result)
}

func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/api/v1/auth",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.authService.LoginWithGoogle(state), http.StatusTemporaryRedirect)
}

func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != r.URL.Query().Get("state") {
		response.Unauthorized(w, "Invalid OAuth state")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	result, err := h.authService.OAuthCallbackGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeTokens(w, result)
}

func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFromRequest(r)
	if refreshToken == "" {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	result, err := h.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeTokens(w, result)
}

func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := h.refreshTokenFromRequest(r)

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie client-side too.
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	response.SuccessWithMessage(w, "Logged out", nil)
}

func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *authHandlerImpl) writeTokens(w http.ResponseWriter, tokens *auth.TokenResponse) {
	// Refresh token travels in an HttpOnly cookie, access token in the body.
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.ExpiresAt))

	response.Success(w, auth.TokenResponse{
		AccessToken: tokens.AccessToken,
		ExpiresAt:   tokens.ExpiresAt,
	})
}

func (h *authHandlerImpl) refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}
