package content

import (
	"github.com/catalog/backend/internal/domain/shared"
)

// FAQ is a public frequently-asked question entry
type FAQ struct {
	shared.BaseEntity
	Question shared.LocalizedText `gorm:"type:jsonb;not null" json:"question"`
	Answer   shared.LocalizedText `gorm:"type:jsonb;not null" json:"answer"`
	IsActive bool                 `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (FAQ) TableName() string {
	return "faqs"
}

// NewFAQ creates a FAQ entry
func NewFAQ(question, answer shared.LocalizedText) (*FAQ, error) {
	if question.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "FAQ question requires the base language (az)")
	}
	if answer.Az == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "FAQ answer requires the base language (az)")
	}

	return &FAQ{
		Question: question,
		Answer:   answer,
		IsActive: true,
	}, nil
}
