package identity

import (
	"context"

	"github.com/catalog/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the privilege level of an admin account
type AdminRole string

const (
	AdminRoleSuper  AdminRole = "super"
	AdminRoleEditor AdminRole = "editor"
)

// Admin is a back-office account allowed to mutate the catalog
type Admin struct {
	shared.BaseEntity
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	Role         AdminRole `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Admin) TableName() string {
	return "admins"
}

// NewAdmin creates an admin with a bcrypt-hashed password
func NewAdmin(username, password string, role AdminRole) (*Admin, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Admin{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the password after verifying the old one
func (a *Admin) ChangePassword(oldPassword, newPassword string) error {
	if !a.CheckPassword(oldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	if len(newPassword) < 8 {
		return shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

// AdminRepository defines the persistence interface for admin accounts
type AdminRepository interface {
	FindByID(ctx context.Context, id int64) (*Admin, error)
	FindByUsername(ctx context.Context, username string) (*Admin, error)
	Create(ctx context.Context, admin *Admin) error
	Save(ctx context.Context, admin *Admin) error
}
