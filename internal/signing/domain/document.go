package domain

import (
	"time"

	"signflow-server/internal/infra/utils"
)

type Document struct {
	ID           ID
	OwnerID      ID
	Title        string
	Status       DocumentStatus
	SourceKey    string
	FinalizedKey string
	PageCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

func (d *Document) IsDeleted() bool {
	return d.DeletedAt != nil
}

func (d *Document) IsDraft() bool {
	return d.Status == DocumentStatusDraft
}

func (d *Document) SoftDelete() {
	now := time.Now()
	d.DeletedAt = &now
	d.UpdatedAt = now
}

// RequestFinalize moves a draft into the finalizing state. Field placement is
// frozen from this point on.
func (d *Document) RequestFinalize() {
	d.Status = DocumentStatusFinalizing
	d.UpdatedAt = time.Now()
}

func (d *Document) MarkFinalized(finalizedKey string) {
	d.Status = DocumentStatusCompleted
	d.FinalizedKey = finalizedKey
	d.UpdatedAt = time.Now()
}

// MarkFinalizeFailed puts the document back into draft so the owner can retry.
func (d *Document) MarkFinalizeFailed() {
	d.Status = DocumentStatusDraft
	d.UpdatedAt = time.Now()
}

func NewDocumentBuilder() *documentBuilder {
	return &documentBuilder{}
}

type documentBuilder struct {
	actions []documentHandler
}

type documentHandler func(d *Document) error

func (b *documentBuilder) WithOwner(value ID) *documentBuilder {
	b.actions = append(b.actions, func(d *Document) error {
		d.OwnerID = value
		return nil
	})
	return b
}

func (b *documentBuilder) WithTitle(value string) *documentBuilder {
	b.actions = append(b.actions, func(d *Document) error {
		if value == "" {
			return ErrDocumentTitleRequired
		}
		d.Title = value
		return nil
	})
	return b
}

func (b *documentBuilder) WithSourceKey(value string) *documentBuilder {
	b.actions = append(b.actions, func(d *Document) error {
		d.SourceKey = value
		return nil
	})
	return b
}

func (b *documentBuilder) WithPageCount(value int) *documentBuilder {
	b.actions = append(b.actions, func(d *Document) error {
		if value < 1 {
			return ErrDocumentHasNoPages
		}
		d.PageCount = value
		return nil
	})
	return b
}

func (b *documentBuilder) Build() (Document, error) {
	now := time.Now()
	result := Document{
		ID:        ID(utils.GenerateUUID()),
		Status:    DocumentStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Document{}, err
		}
	}
	return result, nil
}
