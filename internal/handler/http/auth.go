package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/handler/http/middleware"
	"github.com/crewlog/crewlog-backend/internal/handler/http/response"
	"github.com/crewlog/crewlog-backend/internal/pkg/jwt"
	"github.com/crewlog/crewlog-backend/internal/pkg/oauth"
	authService "github.com/crewlog/crewlog-backend/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService   *authService.Service
	jwtService    jwt.Service
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(svc *authService.Service, jwtService jwt.Service, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		authService:   svc,
		jwtService:    jwtService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state, err := a.googleService.GenerateState(r.UserAgent())
	if err != nil {
		slog.Error("Generate OAuth state error", "error", err)
		response.InternalServerError(w, "Could not start Google login")
		return
	}
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler. On success the browser is sent
// back to the frontend with the tokens in the fragment.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	tokens, err := a.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		slog.Error("OAuthCallbackGoogle service error", "error", err)
		http.Redirect(w, r, a.frontendURL+"/login?error=oauth_failed", http.StatusTemporaryRedirect)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))

	redirect := fmt.Sprintf("%s/login/callback#access_token=%s&expires_at=%d",
		a.frontendURL, url.QueryEscape(tokens.AccessToken), tokens.AccessTokenExpiresIn)
	http.Redirect(w, r, redirect, http.StatusTemporaryRedirect)
}

// RefreshToken implements AuthHandler. The refresh token is taken from the
// cookie first, then the body.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var refreshReq auth.RefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&refreshReq); err == nil {
			refreshToken = refreshReq.RefreshToken
		}
	}
	if refreshToken == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokens, err := a.authService.Refresh(r.Context(), refreshToken)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		a.authService.Logout(r.Context(), cookie.Value)
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out", nil)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, _, _, ok := middleware.Claims(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var changeReq auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := changeReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), userID, changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password changed", nil)
}
