package internal

import (
	"time"

	"signflow-server/internal/signing/domain"
)

type Signer struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	DocumentID   string    `json:"document_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null"`
	DisplayIndex int       `json:"display_index"`
	Status       string    `json:"status" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Signer) TableName() string {
	return "signers"
}

func (s Signer) ToDomain() domain.Signer {
	return domain.Signer{
		ID:           domain.ID(s.ID),
		DocumentID:   domain.ID(s.DocumentID),
		Name:         s.Name,
		Email:        s.Email,
		DisplayIndex: s.DisplayIndex,
		Status:       domain.SignerStatus(s.Status),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromSigner(value domain.Signer) Signer {
	return Signer{
		ID:           value.ID.String(),
		DocumentID:   value.DocumentID.String(),
		Name:         value.Name,
		Email:        value.Email,
		DisplayIndex: value.DisplayIndex,
		Status:       string(value.Status),
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
	}
}
