package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider is the external identity service used for sign-in, sign-up and
// email verification. When the deployment has no provider configured the
// auth service falls back to the local user store.
type Provider interface {
	// SignInWithPassword authenticates email/password against the provider.
	SignInWithPassword(ctx context.Context, email string, password string) (UserInfo, error)
	// SignUp registers a new account with the provider.
	SignUp(ctx context.Context, email string, password string, fullName string) (UserInfo, error)
	// ResendVerification asks the provider to re-send the signup
	// verification email.
	ResendVerification(ctx context.Context, email string) error
}

type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_confirmed"`
}

type ProviderImpl struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewProvider(baseURL string, apiKey string) Provider {
	return &ProviderImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        UserInfo `json:"user"`
}

func (p *ProviderImpl) SignInWithPassword(ctx context.Context, email string, password string) (UserInfo, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp tokenResponse
	if err := p.post(ctx, "/auth/v1/token?grant_type=password", payload, &resp); err != nil {
		return UserInfo{}, err
	}

	if resp.AccessToken == "" {
		return UserInfo{}, fmt.Errorf("identity provider returned no session")
	}

	return resp.User, nil
}

func (p *ProviderImpl) SignUp(ctx context.Context, email string, password string, fullName string) (UserInfo, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
		"data":     map[string]string{"full_name": fullName},
	}

	var user UserInfo
	if err := p.post(ctx, "/auth/v1/signup", payload, &user); err != nil {
		return UserInfo{}, err
	}

	return user, nil
}

func (p *ProviderImpl) ResendVerification(ctx context.Context, email string) error {
	payload := map[string]string{"type": "signup", "email": email}
	return p.post(ctx, "/auth/v1/resend", payload, nil)
}

func (p *ProviderImpl) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode identity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("identity provider rejected request: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode identity response: %w", err)
	}
	return nil
}
