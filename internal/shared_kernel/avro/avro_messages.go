package avro

import (
	"fmt"
	"reflect"
	"time"

	"signflow-server/internal/signing/domain"
)

// Avro-compatible message structs matching the registered schemas. Timestamps
// travel as epoch milliseconds so the records stay free of union types.

// AvroDocument represents the Avro-compatible Document message
type AvroDocument struct {
	ID           string `json:"id" avro:"id"`
	OwnerID      string `json:"owner_id" avro:"owner_id"`
	Title        string `json:"title" avro:"title"`
	Status       string `json:"status" avro:"status"`
	SourceKey    string `json:"source_key" avro:"source_key"`
	FinalizedKey string `json:"finalized_key" avro:"finalized_key"`
	PageCount    int    `json:"page_count" avro:"page_count"`
	CreatedAt    int64  `json:"created_at" avro:"created_at"`
	UpdatedAt    int64  `json:"updated_at" avro:"updated_at"`
	DeletedAt    int64  `json:"deleted_at" avro:"deleted_at"`
}

// AvroSigner represents the Avro-compatible Signer message
type AvroSigner struct {
	ID           string `json:"id" avro:"id"`
	DocumentID   string `json:"document_id" avro:"document_id"`
	Name         string `json:"name" avro:"name"`
	Email        string `json:"email" avro:"email"`
	DisplayIndex int    `json:"display_index" avro:"display_index"`
	Status       string `json:"status" avro:"status"`
	CreatedAt    int64  `json:"created_at" avro:"created_at"`
	UpdatedAt    int64  `json:"updated_at" avro:"updated_at"`
}

// AvroFormField represents the Avro-compatible FormField message. Positions
// keep the percent convention of the rest of the system.
type AvroFormField struct {
	ID          string  `json:"id" avro:"id"`
	DocumentID  string  `json:"document_id" avro:"document_id"`
	FieldType   string  `json:"field_type" avro:"field_type"`
	PageNumber  int     `json:"page_number" avro:"page_number"`
	SignerID    string  `json:"signer_id" avro:"signer_id"`
	XPosition   float64 `json:"x_position" avro:"x_position"`
	YPosition   float64 `json:"y_position" avro:"y_position"`
	Width       float64 `json:"width" avro:"width"`
	Height      float64 `json:"height" avro:"height"`
	Required    bool    `json:"required" avro:"required"`
	Value       string  `json:"value" avro:"value"`
	Completed   bool    `json:"completed" avro:"completed"`
	CompletedAt int64   `json:"completed_at" avro:"completed_at"`
	CreatedAt   int64   `json:"created_at" avro:"created_at"`
	UpdatedAt   int64   `json:"updated_at" avro:"updated_at"`
}

// ToAvroDocument converts any flat document-shaped struct to its Avro message.
// Both the domain aggregate and the persistence row share the field names.
func ToAvroDocument(value any) (AvroDocument, error) {
	v, err := structValue(value)
	if err != nil {
		return AvroDocument{}, err
	}

	return AvroDocument{
		ID:           fieldString(v, "ID"),
		OwnerID:      fieldString(v, "OwnerID"),
		Title:        fieldString(v, "Title"),
		Status:       fieldString(v, "Status"),
		SourceKey:    fieldString(v, "SourceKey"),
		FinalizedKey: fieldString(v, "FinalizedKey"),
		PageCount:    int(fieldInt(v, "PageCount")),
		CreatedAt:    fieldTimeMillis(v, "CreatedAt"),
		UpdatedAt:    fieldTimeMillis(v, "UpdatedAt"),
		DeletedAt:    fieldTimeMillis(v, "DeletedAt"),
	}, nil
}

// ToAvroSigner converts any flat signer-shaped struct to its Avro message.
func ToAvroSigner(value any) (AvroSigner, error) {
	v, err := structValue(value)
	if err != nil {
		return AvroSigner{}, err
	}

	return AvroSigner{
		ID:           fieldString(v, "ID"),
		DocumentID:   fieldString(v, "DocumentID"),
		Name:         fieldString(v, "Name"),
		Email:        fieldString(v, "Email"),
		DisplayIndex: int(fieldInt(v, "DisplayIndex")),
		Status:       fieldString(v, "Status"),
		CreatedAt:    fieldTimeMillis(v, "CreatedAt"),
		UpdatedAt:    fieldTimeMillis(v, "UpdatedAt"),
	}, nil
}

// ToAvroFormField converts any flat form-field-shaped struct to its Avro
// message. The domain aggregate nests identity and position, so it gets a
// dedicated conversion path.
func ToAvroFormField(value any) (AvroFormField, error) {
	if field, ok := value.(domain.FormField); ok {
		return fromDomainFormField(field), nil
	}
	if field, ok := value.(*domain.FormField); ok {
		return fromDomainFormField(*field), nil
	}

	v, err := structValue(value)
	if err != nil {
		return AvroFormField{}, err
	}

	return AvroFormField{
		ID:          fieldString(v, "ID"),
		DocumentID:  fieldString(v, "DocumentID"),
		FieldType:   fieldString(v, "FieldType"),
		PageNumber:  int(fieldInt(v, "PageNumber")),
		SignerID:    fieldString(v, "SignerID"),
		XPosition:   fieldFloat(v, "XPosition"),
		YPosition:   fieldFloat(v, "YPosition"),
		Width:       fieldFloat(v, "Width"),
		Height:      fieldFloat(v, "Height"),
		Required:    fieldBool(v, "Required"),
		Value:       fieldString(v, "Value"),
		Completed:   fieldBool(v, "Completed"),
		CompletedAt: fieldTimeMillis(v, "CompletedAt"),
		CreatedAt:   fieldTimeMillis(v, "CreatedAt"),
		UpdatedAt:   fieldTimeMillis(v, "UpdatedAt"),
	}, nil
}

func fromDomainFormField(field domain.FormField) AvroFormField {
	result := AvroFormField{
		ID:         field.Identity.Current(),
		DocumentID: field.DocumentID.String(),
		FieldType:  string(field.FieldType),
		PageNumber: field.PageNumber,
		SignerID:   field.AssignedSignerID.String(),
		XPosition:  field.Position.X,
		YPosition:  field.Position.Y,
		Width:      field.Position.Width,
		Height:     field.Position.Height,
		Required:   field.Required,
		Value:      field.Value,
		Completed:  field.Completed,
		CreatedAt:  field.CreatedAt.UnixMilli(),
		UpdatedAt:  field.UpdatedAt.UnixMilli(),
	}
	if field.CompletedAt != nil {
		result.CompletedAt = field.CompletedAt.UnixMilli()
	}
	return result
}

func structValue(value any) (reflect.Value, error) {
	v := reflect.Indirect(reflect.ValueOf(value))
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %T", value)
	}
	return v, nil
}

func fieldString(v reflect.Value, name string) string {
	field := v.FieldByName(name)
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

func fieldInt(v reflect.Value, name string) int64 {
	field := v.FieldByName(name)
	if !field.IsValid() || !field.CanInt() {
		return 0
	}
	return field.Int()
}

func fieldFloat(v reflect.Value, name string) float64 {
	field := v.FieldByName(name)
	if !field.IsValid() || field.Kind() != reflect.Float64 {
		return 0
	}
	return field.Float()
}

func fieldBool(v reflect.Value, name string) bool {
	field := v.FieldByName(name)
	if !field.IsValid() || field.Kind() != reflect.Bool {
		return false
	}
	return field.Bool()
}

func fieldTimeMillis(v reflect.Value, name string) int64 {
	field := v.FieldByName(name)
	if !field.IsValid() {
		return 0
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return 0
		}
		field = field.Elem()
	}
	if t, ok := field.Interface().(time.Time); ok {
		if t.IsZero() {
			return 0
		}
		return t.UnixMilli()
	}
	return 0
}
