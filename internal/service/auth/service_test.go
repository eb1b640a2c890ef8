package auth

import (
	"context"
	"testing"

	"github.com/punchlog/punchlog-backend-go/internal/config"
	"github.com/punchlog/punchlog-backend-go/internal/domain/auth"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse-battery"

func testService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService("test-secret-key", "1h", "24h")
	admin := config.AdminConfig{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}
	return NewAuthService(jwtService, nil, admin)
}

func TestLogin(t *testing.T) {
	svc := testService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotZero(t, resp.ExpiresAt)
	assert.NotZero(t, resp.RefreshExp)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ADMIN@Example.COM",
		Password: testPassword,
	})
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "intruder@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InvalidRequest(t *testing.T) {
	svc := testService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}

func TestRefresh(t *testing.T) {
	svc := testService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc := testService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefresh_Garbage(t *testing.T) {
	svc := testService(t)

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc := testService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
