package user

import "time"

type User struct {
	ID            string
	Email         string
	Username      string
	FullName      *string
	PasswordHash  *string
	IsAdmin       bool
	EmailVerified bool
	ProviderID    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasLocalPassword reports whether the account can authenticate without
// the external identity provider.
func (u *User) HasLocalPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
