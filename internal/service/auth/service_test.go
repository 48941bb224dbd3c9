package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/auth"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/user"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/identity"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, newUser user.User) (user.User, error) {
	if _, ok := f.users[newUser.Email]; ok {
		return user.User{}, user.ErrUserEmailExists
	}
	f.users[newUser.Email] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) LinkProvider(_ context.Context, userID, providerID string) error {
	for email, u := range f.users {
		if u.ID == userID {
			u.ProviderID = &providerID
			f.users[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) VerifyEmail(_ context.Context, userID string) error {
	for email, u := range f.users {
		if u.ID == userID {
			u.EmailVerified = true
			f.users[email] = u
			return nil
		}
	}
	return user.ErrUserNotFound
}

func seedLocalUser(repo *fakeUserRepo, email, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	hashStr := string(hash)
	repo.users[email] = user.User{
		ID:            "user-1",
		Email:         email,
		Username:      email,
		PasswordHash:  &hashStr,
		EmailVerified: true,
	}
}

func newTestService(userRepo *fakeUserRepo) auth.AuthService {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(nil, nil, jwtService, nil, userRepo)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedLocalUser(repo, "ada@example.com", "correct-password")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Signup_LocalAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	result, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:           "grace@example.com",
		Password:        "hopper-navy-1234",
		ConfirmPassword: "hopper-navy-1234",
		FullName:        "Grace Hopper",
	})
	require.NoError(t, err)

	// Local accounts are verified immediately; there is no provider to
	// send a verification email.
	assert.True(t, result.User.EmailVerified)
	assert.Equal(t, "grace@example.com", result.User.Username)

	stored := repo.users["grace@example.com"]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("hopper-navy-1234")))
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	seedLocalUser(repo, "ada@example.com", "some-password")
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:           "ada@example.com",
		Password:        "another-password",
		ConfirmPassword: "another-password",
		FullName:        "Ada Lovelace",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:           "grace@example.com",
		Password:        "hopper-navy-1234",
		ConfirmPassword: "different",
		FullName:        "Grace Hopper",
	})
	assert.Error(t, err)
}

// failingProvider rejects every call, standing in for an unreachable
// identity service.
type failingProvider struct{}

func (failingProvider) SignInWithPassword(context.Context, string, string) (identity.UserInfo, error) {
	return identity.UserInfo{}, errors.New("connection refused")
}

func (failingProvider) SignUp(context.Context, string, string, string) (identity.UserInfo, error) {
	return identity.UserInfo{}, errors.New("connection refused")
}

func (failingProvider) ResendVerification(context.Context, string) error {
	return errors.New("connection refused")
}

func TestAuthService_Signup_ProviderFailureIsTranslated(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(nil, failingProvider{}, jwtService, nil, newFakeUserRepo())

	_, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:           "grace@example.com",
		Password:        "hopper-navy-1234",
		ConfirmPassword: "hopper-navy-1234",
		FullName:        "Grace Hopper",
	})
	assert.ErrorIs(t, err, auth.ErrSignupFailed)
}

func TestAuthService_ResendVerification_ProviderFailureIsTranslated(t *testing.T) {
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	svc := NewAuthService(nil, failingProvider{}, jwtService, nil, newFakeUserRepo())

	err := svc.ResendVerification(context.Background(), auth.ResendVerificationRequest{
		Email: "grace@example.com",
	})
	assert.ErrorIs(t, err, auth.ErrResendFailed)
}

func TestAuthService_RefreshToken_Garbage(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: "not-a-jwt",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_RefreshToken_RejectsAccessToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedLocalUser(repo, "ada@example.com", "correct-password")
	svc := newTestService(repo)

	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	accessToken, _, err := jwtService.GenerateAccessToken("user-1", "ada@example.com", "ada@example.com", false)
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		RefreshToken: accessToken,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
