package content

import (
	"github.com/catalog/backend/internal/domain/shared"
)

// Testimonial is a customer quote shown on the public site
type Testimonial struct {
	shared.BaseEntity
	Name     shared.LocalizedText `gorm:"type:jsonb;not null" json:"name"`
	Message  shared.LocalizedText `gorm:"type:jsonb;not null" json:"message"`
	ImageURL string               `gorm:"type:varchar(500)" json:"imageUrl,omitempty"`
	IsActive bool                 `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Testimonial) TableName() string {
	return "testimonials"
}

// NewTestimonial creates a testimonial
func NewTestimonial(name, message shared.LocalizedText) (*Testimonial, error) {
	if name.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Testimonial name requires the base language (az)")
	}
	if message.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Testimonial message requires the base language (az)")
	}

	return &Testimonial{
		Name:     name,
		Message:  message,
		IsActive: true,
	}, nil
}
