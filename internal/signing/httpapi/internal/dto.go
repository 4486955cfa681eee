package internal

import (
	"time"

	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

type DocumentResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	PageCount int       `json:"page_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToDocumentResponse(document domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        document.ID.String(),
		OwnerID:   document.OwnerID.String(),
		Title:     document.Title,
		Status:    string(document.Status),
		PageCount: document.PageCount,
		CreatedAt: document.CreatedAt,
		UpdatedAt: document.UpdatedAt,
	}
}

type SignerCreateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SignerResponse struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DisplayIndex int       `json:"display_index"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToSignerResponse(signer domain.Signer) SignerResponse {
	return SignerResponse{
		ID:           signer.ID.String(),
		DocumentID:   signer.DocumentID.String(),
		Name:         signer.Name,
		Email:        signer.Email,
		DisplayIndex: signer.DisplayIndex,
		Status:       string(signer.Status),
		CreatedAt:    signer.CreatedAt,
	}
}

type FieldCreateRequest struct {
	FieldType  string  `json:"field_type"`
	PageNumber int     `json:"page_number"`
	SignerID   string  `json:"signer_id"`
	XPosition  float64 `json:"x_position"`
	YPosition  float64 `json:"y_position"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Required   *bool   `json:"required,omitempty"`
}

type FieldPositionRequest struct {
	XPosition float64 `json:"x_position"`
	YPosition float64 `json:"y_position"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

func (r FieldPositionRequest) ToPercentRect() geometry.PercentRect {
	return geometry.PercentRect{
		X:      r.XPosition,
		Y:      r.YPosition,
		Width:  r.Width,
		Height: r.Height,
	}
}

type FieldCompleteRequest struct {
	SignerID string `json:"signer_id"`
	Value    string `json:"value"`
}

// FieldResponse carries the position in percentages of the page rendering
// surface, the same unit the placement engine works in.
type FieldResponse struct {
	ID          string     `json:"id"`
	DocumentID  string     `json:"document_id"`
	FieldType   string     `json:"field_type"`
	PageNumber  int        `json:"page_number"`
	SignerID    string     `json:"signer_id"`
	XPosition   float64    `json:"x_position"`
	YPosition   float64    `json:"y_position"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	Required    bool       `json:"required"`
	Value       string     `json:"value,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func ToFieldResponse(field domain.FormField) FieldResponse {
	return FieldResponse{
		ID:          field.Identity.Current(),
		DocumentID:  field.DocumentID.String(),
		FieldType:   string(field.FieldType),
		PageNumber:  field.PageNumber,
		SignerID:    field.AssignedSignerID.String(),
		XPosition:   field.Position.X,
		YPosition:   field.Position.Y,
		Width:       field.Position.Width,
		Height:      field.Position.Height,
		Required:    field.Required,
		Value:       field.Value,
		Completed:   field.Completed,
		CompletedAt: field.CompletedAt,
	}
}

func ToFieldResponses(fields []domain.FormField) []FieldResponse {
	responses := make([]FieldResponse, len(fields))
	for i, field := range fields {
		responses[i] = ToFieldResponse(field)
	}
	return responses
}
