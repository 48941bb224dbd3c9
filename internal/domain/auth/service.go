package auth

import "context"

type AuthService interface {
	// Login authenticates against the external identity provider when it
	// is configured, falling back to the local password store otherwise.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
	VerifyEmail(ctx context.Context, userID string) error
	ResendVerification(ctx context.Context, req ResendVerificationRequest) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
