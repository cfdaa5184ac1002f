package identity

import (
	"time"

	"github.com/google/uuid"
)

// RegisterInput contains registration input
type RegisterInput struct {
	Phone    string
	Username string
	Password string
}

// LoginInput contains login credentials. Customers sign in with their phone
// number in any common format.
type LoginInput struct {
	Phone    string
	Password string
}

// RefreshTokenInput contains the refresh token
type RefreshTokenInput struct {
	RefreshToken string
}

// UserInfo contains public user information
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Phone    string    `json:"phone"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
}

// AuthResult contains tokens and user info returned on login or registration
type AuthResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenResult contains the new token pair
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}
