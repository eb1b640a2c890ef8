package auth

import (
	"context"
	"strings"

	"github.com/punchlog/punchlog-backend-go/internal/config"
	"github.com/punchlog/punchlog-backend-go/internal/domain/auth"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/jwt"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	jwtService    jwt.Service
	googleService oauth.GoogleService
	admin         config.AdminConfig
}

func NewAuthService(jwtService jwt.Service, googleService oauth.GoogleService, admin config.AdminConfig) auth.AuthService {
	return &AuthServiceImpl{
		jwtService:    jwtService,
		googleService: googleService,
		admin:         admin,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if !strings.EqualFold(req.Email, s.admin.Email) {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens()
}

// LoginWithGoogle implements auth.AuthService.
func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, state string) string {
	return s.googleService.RedirectURL(state)
}

// OAuthCallbackGoogle implements auth.AuthService.
func (s *AuthServiceImpl) OAuthCallbackGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	token, err := s.googleService.VerifyToken(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	if !info.VerifiedEmail || !strings.EqualFold(info.Email, s.admin.Email) {
		return auth.LoginResponse{}, auth.ErrEmailNotAllowed
	}

	return s.issueTokens()
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	email, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(email)
	if err != nil {
		return auth.RefreshResponse{}, err
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens() (auth.LoginResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(s.admin.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(s.admin.Email)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    accessExp,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
	}, nil
}
