package internal

import (
	"time"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

// FormField persists positions in the percent wire format: x_position and
// friends are percentages of the page rendering surface, never pixels.
type FormField struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	DocumentID  string     `json:"document_id" gorm:"index;not null"`
	FieldType   string     `json:"field_type" gorm:"not null"`
	PageNumber  int        `json:"page_number" gorm:"index;not null"`
	SignerID    string     `json:"signer_id" gorm:"index;not null"`
	XPosition   float64    `json:"x_position"`
	YPosition   float64    `json:"y_position"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Required    bool       `json:"required"`
	Value       string     `json:"value"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (FormField) TableName() string {
	return "form_fields"
}

func (f FormField) ToDomain() domain.FormField {
	return domain.FormField{
		Identity:         domain.CommittedIdentity(f.ID),
		DocumentID:       domain.ID(f.DocumentID),
		FieldType:        domain.FieldType(f.FieldType),
		PageNumber:       f.PageNumber,
		AssignedSignerID: domain.ID(f.SignerID),
		Position: geometry.PercentRect{
			X:      f.XPosition,
			Y:      f.YPosition,
			Width:  f.Width,
			Height: f.Height,
		},
		Required:    f.Required,
		Value:       f.Value,
		Completed:   f.Completed,
		CompletedAt: f.CompletedAt,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromFormField(value domain.FormField) FormField {
	return FormField{
		ID:          value.Identity.Current(),
		DocumentID:  value.DocumentID.String(),
		FieldType:   string(value.FieldType),
		PageNumber:  value.PageNumber,
		SignerID:    value.AssignedSignerID.String(),
		XPosition:   value.Position.X,
		YPosition:   value.Position.Y,
		Width:       value.Position.Width,
		Height:      value.Position.Height,
		Required:    value.Required,
		Value:       value.Value,
		Completed:   value.Completed,
		CompletedAt: value.CompletedAt,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}
