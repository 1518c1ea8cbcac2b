package content

import (
	"time"

	"github.com/catalog/backend/internal/domain/shared"
)

// Promo is a time-boxed promotional banner attached to a product
type Promo struct {
	shared.BaseEntity
	Title         shared.LocalizedText `gorm:"type:jsonb;not null" json:"title"`
	Subtitle      shared.LocalizedText `gorm:"type:jsonb" json:"subtitle"`
	Description   shared.LocalizedText `gorm:"type:jsonb" json:"description"`
	StartDate     time.Time            `gorm:"not null" json:"startDate"`
	EndDate       time.Time            `gorm:"not null" json:"endDate"`
	BackgroundImg string               `gorm:"type:varchar(500)" json:"backgroundImg,omitempty"`
	ProductID     int64                `gorm:"not null;index" json:"productId"`
	IsActive      bool                 `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Promo) TableName() string {
	return "promos"
}

// NewPromo creates a promo for a product over a date window
func NewPromo(title shared.LocalizedText, productID int64, start, end time.Time) (*Promo, error) {
	if title.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Promo title requires the base language (az)")
	}
	if productID == 0 {
		return nil, shared.NewDomainError("INVALID_STATE", "Promo product is required")
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Promo end date cannot precede the start date")
	}

	return &Promo{
		Title:     title,
		ProductID: productID,
		StartDate: start,
		EndDate:   end,
		IsActive:  true,
	}, nil
}

// IsCurrent reports whether the promo window covers the given instant
func (p *Promo) IsCurrent(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}
