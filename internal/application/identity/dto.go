package identity

import (
	"time"
)

// LoginInput contains the input for admin login
type LoginInput struct {
	Username string
	Password string
	IP       string // Client IP for audit logging
}

// LoginResult contains the result of a successful login
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	Admin                 AdminInfo
}

// AdminInfo contains basic admin account information
type AdminInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains the input for admin logout
type LogoutInput struct {
	TokenJTI       string
	TokenExpiresAt time.Time
}

// ChangePasswordInput contains the input for a password change
type ChangePasswordInput struct {
	AdminID     int64
	OldPassword string
	NewPassword string
}
