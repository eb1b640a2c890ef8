package auth

import "context"

// AuthService authenticates the dashboard admin. There is a single account,
// configured through the environment; Google sign-in is restricted to the
// same address.
type AuthService interface {
	// Login checks the configured admin credentials and issues tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// LoginWithGoogle returns the Google consent redirect URL for a state.
	LoginWithGoogle(ctx context.Context, state string) string

	// OAuthCallbackGoogle exchanges the authorization code and issues
	// tokens when the Google account matches the admin email.
	OAuthCallbackGoogle(ctx context.Context, code string) (LoginResponse, error)

	// Refresh validates a refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
