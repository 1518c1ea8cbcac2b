package identity

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/catalog/backend/internal/domain/identity"
	"github.com/catalog/backend/internal/domain/shared"
	"github.com/catalog/backend/internal/infrastructure/auth"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  identity.AdminRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo identity.AdminRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates an admin and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("username", input.Username), zap.String("ip", input.IP))

	admin, err := s.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Warn("Admin not found during login", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	if !admin.IsActive {
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", input.Username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !admin.CheckPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("username", input.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     string(admin.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.logger.Info("Admin logged in", zap.String("username", admin.Username), zap.Int64("admin_id", admin.ID))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Admin: AdminInfo{
			ID:       admin.ID,
			Username: admin.Username,
			Role:     string(admin.Role),
		},
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	adminID, err := claims.AdminIDValue()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid admin ID in token")
	}

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		s.logger.Warn("Admin not found during token refresh", zap.Int64("admin_id", adminID))
		return nil, shared.NewDomainError("NOT_FOUND", "Admin account not found")
	}
	if !admin.IsActive {
		s.logger.Warn("Token refresh for deactivated account", zap.Int64("admin_id", adminID))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, admin.Username, string(admin.Role))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	s.logger.Info("Token refreshed", zap.Int64("admin_id", adminID))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout blacklists the access token until its natural expiry
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI == "" {
		return nil
	}

	ttl := time.Until(input.TokenExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, ttl); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
	}

	s.logger.Info("Admin logged out", zap.String("jti", input.TokenJTI))
	return nil
}

// GetCurrentAdmin returns the account behind a validated token
func (s *AuthService) GetCurrentAdmin(ctx context.Context, adminID int64) (*AdminInfo, error) {
	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Admin account not found")
	}
	return &AdminInfo{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     string(admin.Role),
	}, nil
}

// ChangePassword changes an admin's password
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	admin, err := s.adminRepo.FindByID(ctx, input.AdminID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Admin account not found")
	}

	if err := admin.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.adminRepo.Save(ctx, admin); err != nil {
		s.logger.Error("Failed to persist password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("Admin password changed", zap.Int64("admin_id", input.AdminID))
	return nil
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrInvalidToken, auth.ErrInvalidClaims, auth.ErrInvalidTokenType:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
