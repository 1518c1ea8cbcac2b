package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	appidentity "github.com/catalog/backend/internal/application/identity"
	"github.com/catalog/backend/internal/interfaces/http/middleware"
)

// AuthHandler exposes admin authentication over HTTP. Login and token
// refresh are public; logout, profile and password change require a
// valid access token.
type AuthHandler struct {
	BaseHandler
	service *appidentity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes mounts auth routes on the public and admin groups
func (h *AuthHandler) RegisterRoutes(public, admin *gin.RouterGroup) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
	}

	adminAuth := admin.Group("/auth")
	{
		adminAuth.POST("/logout", h.Logout)
		adminAuth.GET("/me", h.Me)
		adminAuth.POST("/change-password", h.ChangePassword)
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

type tokenPairResponse struct {
	AccessToken           string                 `json:"accessToken"`
	RefreshToken          string                 `json:"refreshToken"`
	AccessTokenExpiresAt  time.Time              `json:"accessTokenExpiresAt"`
	RefreshTokenExpiresAt time.Time              `json:"refreshTokenExpiresAt"`
	TokenType             string                 `json:"tokenType"`
	Admin                 *appidentity.AdminInfo `json:"admin,omitempty"`
}

// Login authenticates an admin with username and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), appidentity.LoginInput{
		Username: req.Username,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tokenPairResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		TokenType:             result.TokenType,
		Admin:                 &result.Admin,
	})
}

// Refresh exchanges a refresh token for a fresh token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.RefreshToken(c.Request.Context(), appidentity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tokenPairResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		TokenType:             result.TokenType,
	})
}

// Logout revokes the access token used for this request
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "authentication required")
		return
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	err := h.service.Logout(c.Request.Context(), appidentity.LogoutInput{
		TokenJTI:       claims.ID,
		TokenExpiresAt: expiresAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "logged out"})
}

// Me returns the authenticated admin's account info
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := h.currentAdminID(c)
	if !ok {
		return
	}

	info, err := h.service.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// ChangePassword changes the authenticated admin's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	adminID, ok := h.currentAdminID(c)
	if !ok {
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body")
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), appidentity.ChangePasswordInput{
		AdminID:     adminID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "password changed"})
}

func (h *AuthHandler) currentAdminID(c *gin.Context) (int64, bool) {
	raw := middleware.GetJWTAdminID(c)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.Unauthorized(c, "authentication required")
		return 0, false
	}
	return id, true
}

var _ RouteRegistrar = (*AuthHandler)(nil)
