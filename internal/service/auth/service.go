package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/auth"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/user"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/database"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/identity"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/jwt"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db       *database.DB
	provider identity.Provider // nil when no external provider is configured
	jwt.Service
	postgresql.JWTRepository
	user.UserRepository
}

func NewAuthService(
	db *database.DB,
	provider identity.Provider,
	jwtService jwt.Service,
	jwtRepo postgresql.JWTRepository,
	userRepo user.UserRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		provider:       provider,
		Service:        jwtService,
		JWTRepository:  jwtRepo,
		UserRepository: userRepo,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login tries the external identity provider first and falls back to the
// local password store when the provider is not configured. Either path
// ends with our own token pair, so the rest of the API only ever sees our
// JWTs.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if a.provider != nil {
		info, signInErr := a.provider.SignInWithPassword(ctx, req.Email, req.Password)
		if signInErr != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		if !info.EmailVerified {
			return auth.TokenResponse{}, auth.ErrEmailNotVerified
		}

		// First provider login for an account created elsewhere: mirror
		// it into the local store so admin flags and joins have a row.
		if errors.Is(err, user.ErrUserNotFound) {
			userData, err = a.createMirroredUser(ctx, info)
			if err != nil {
				return auth.TokenResponse{}, err
			}
		} else if userData.ProviderID == nil {
			if err := a.UserRepository.LinkProvider(ctx, userData.ID, info.ID); err != nil {
				return auth.TokenResponse{}, fmt.Errorf("failed to link provider: %w", err)
			}
		}

		return a.issueTokens(ctx, userData)
	}

	// Local fallback.
	if errors.Is(err, user.ErrUserNotFound) || !userData.HasLocalPassword() {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, userData)
}

func (a *AuthServiceImpl) createMirroredUser(ctx context.Context, info identity.UserInfo) (user.User, error) {
	newUser := user.User{
		ID:            uuid.NewString(),
		Email:         info.Email,
		Username:      info.Email,
		EmailVerified: info.EmailVerified,
		ProviderID:    &info.ID,
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to mirror provider user: %w", err)
	}
	return created, nil
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Username, userData.IsAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to generate refresh token: %w", err)
		}

		return a.JWTRepository.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = toUserResponse(userData)

	return tokenResponse, nil
}

func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.SignupResponse{}, err
	}

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return auth.SignupResponse{}, user.ErrUserEmailExists
	}

	newUser := user.User{
		ID:       uuid.NewString(),
		Email:    req.Email,
		Username: req.Email,
		FullName: &req.FullName,
	}

	message := "account created"
	if a.provider != nil {
		info, signUpErr := a.provider.SignUp(ctx, req.Email, req.Password, req.FullName)
		if signUpErr != nil {
			return auth.SignupResponse{}, fmt.Errorf("%w: %v", auth.ErrSignupFailed, signUpErr)
		}
		newUser.ProviderID = &info.ID
		newUser.EmailVerified = info.EmailVerified
		message = "account created, check your email to verify it"
	} else {
		hash, hashErr := a.hashPassword(req.Password)
		if hashErr != nil {
			return auth.SignupResponse{}, hashErr
		}
		newUser.PasswordHash = &hash
		newUser.EmailVerified = true
	}

	created, err := a.UserRepository.Create(ctx, newUser)
	if err != nil {
		return auth.SignupResponse{}, err
	}

	return auth.SignupResponse{
		User:    toUserResponse(created),
		Message: message,
	}, nil
}

func (a *AuthServiceImpl) VerifyEmail(ctx context.Context, userID string) error {
	return a.UserRepository.VerifyEmail(ctx, userID)
}

func (a *AuthServiceImpl) ResendVerification(ctx context.Context, req auth.ResendVerificationRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if a.provider == nil {
		// Local accounts are created verified, nothing to resend.
		return nil
	}

	if err := a.provider.ResendVerification(ctx, req.Email); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrResendFailed, err)
	}
	return nil
}

func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := jwtauth.VerifyToken(a.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	isRevoked, err := a.JWTRepository.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	if isRevoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err =
		a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.Username, userData.IsAdmin)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := a.JWTRepository.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func toUserResponse(u user.User) auth.UserResponse {
	return auth.UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Username:      u.Username,
		FullName:      u.FullName,
		IsAdmin:       u.IsAdmin,
		EmailVerified: u.EmailVerified,
	}
}
