package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/crewlog/crewlog-backend/internal/domain/auth"
	"github.com/crewlog/crewlog-backend/internal/domain/user"
	"github.com/crewlog/crewlog-backend/internal/pkg/jwt"
	"github.com/crewlog/crewlog-backend/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	userRepo      user.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(userRepo user.Repository, jwtService jwt.Service, googleService oauth.GoogleService) *Service {
	return &Service{
		userRepo:      userRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// LoginWithGoogle resolves the Google account to a known user by email.
func (s *Service) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if !info.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("get user by email: %w", err)
	}

	return s.issueTokens(u)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrTokenRevoked
	}

	decoded, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	claims, err := decoded.AsMap(ctx)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("get user: %w", err)
	}

	// Single-use refresh tokens.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}

func (s *Service) ChangePassword(ctx context.Context, userID string, req auth.ChangePasswordRequest) error {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *Service) issueTokens(u user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Position, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}
	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
