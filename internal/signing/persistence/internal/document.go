package internal

import (
	"time"

	"signflow-server/internal/signing/domain"
)

type Document struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	OwnerID      string     `json:"owner_id" gorm:"index;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Status       string     `json:"status" gorm:"index;not null"`
	SourceKey    string     `json:"source_key"`
	FinalizedKey string     `json:"finalized_key"`
	PageCount    int        `json:"page_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Document) TableName() string {
	return "documents"
}

func (d Document) ToDomain() domain.Document {
	return domain.Document{
		ID:           domain.ID(d.ID),
		OwnerID:      domain.ID(d.OwnerID),
		Title:        d.Title,
		Status:       domain.DocumentStatus(d.Status),
		SourceKey:    d.SourceKey,
		FinalizedKey: d.FinalizedKey,
		PageCount:    d.PageCount,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    d.DeletedAt,
	}
}

func FromDocument(value domain.Document) Document {
	return Document{
		ID:           value.ID.String(),
		OwnerID:      value.OwnerID.String(),
		Title:        value.Title,
		Status:       string(value.Status),
		SourceKey:    value.SourceKey,
		FinalizedKey: value.FinalizedKey,
		PageCount:    value.PageCount,
		CreatedAt:    value.CreatedAt,
		UpdatedAt:    value.UpdatedAt,
		DeletedAt:    value.DeletedAt,
	}
}
