package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec implements Codec interface using static Avro schemas
type AvroCodec struct {
	prototype any
	schemas   map[string]avro.Schema
}

// Static Avro schemas for all message types
const (
	// Document schema
	documentSchema = `{
		"type": "record",
		"name": "Document",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "owner_id", "type": "string"},
			{"name": "title", "type": "string"},
			{"name": "status", "type": "string"},
			{"name": "source_key", "type": "string"},
			{"name": "finalized_key", "type": "string"},
			{"name": "page_count", "type": "int"},
			{"name": "created_at", "type": "long"},
			{"name": "updated_at", "type": "long"},
			{"name": "deleted_at", "type": "long"}
		]
	}`

	// Signer schema
	signerSchema = `{
		"type": "record",
		"name": "Signer",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "document_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "email", "type": "string"},
			{"name": "display_index", "type": "int"},
			{"name": "status", "type": "string"},
			{"name": "created_at", "type": "long"},
			{"name": "updated_at", "type": "long"}
		]
	}`

	// FormField schema
	formFieldSchema = `{
		"type": "record",
		"name": "FormField",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "document_id", "type": "string"},
			{"name": "field_type", "type": "string"},
			{"name": "page_number", "type": "int"},
			{"name": "signer_id", "type": "string"},
			{"name": "x_position", "type": "double"},
			{"name": "y_position", "type": "double"},
			{"name": "width", "type": "double"},
			{"name": "height", "type": "double"},
			{"name": "required", "type": "boolean"},
			{"name": "value", "type": "string"},
			{"name": "completed", "type": "boolean"},
			{"name": "completed_at", "type": "long"},
			{"name": "created_at", "type": "long"},
			{"name": "updated_at", "type": "long"}
		]
	}`
)

// NewAvroCodec creates a new Avro codec with static schemas
func NewAvroCodec(prototype any) *AvroCodec {
	schemas := make(map[string]avro.Schema)

	documentAvroSchema, _ := avro.Parse(documentSchema)
	signerAvroSchema, _ := avro.Parse(signerSchema)
	formFieldAvroSchema, _ := avro.Parse(formFieldSchema)

	schemas["Document"] = documentAvroSchema
	schemas["Signer"] = signerAvroSchema
	schemas["FormField"] = formFieldAvroSchema

	return &AvroCodec{
		prototype: prototype,
		schemas:   schemas,
	}
}

func schemaNameForType(value any) (string, error) {
	messageType := reflect.TypeOf(value)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	switch messageType.Name() {
	case "Document", "AvroDocument":
		return "Document", nil
	case "Signer", "AvroSigner":
		return "Signer", nil
	case "FormField", "AvroFormField":
		return "FormField", nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", messageType.Name())
	}
}

// Encode encodes a value into Avro format
func (c *AvroCodec) Encode(value any) ([]byte, error) {
	// Convert the original struct to Avro-compatible struct
	avroValue, err := convertToAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schemaName, err := schemaNameForType(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	data, err := avro.Marshal(c.schemas[schemaName], avroValue)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode decodes an Avro message back into the Avro-compatible struct for the
// configured prototype
func (c *AvroCodec) Decode(data []byte) (any, error) {
	schemaName, err := schemaNameForType(c.prototype)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	var instance any
	switch schemaName {
	case "Document":
		instance = &AvroDocument{}
	case "Signer":
		instance = &AvroSigner{}
	case "FormField":
		instance = &AvroFormField{}
	}

	err = avro.Unmarshal(c.schemas[schemaName], data, instance)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}

// convertToAvroStruct converts an original struct to its Avro-compatible equivalent
func convertToAvroStruct(value any) (any, error) {
	switch value.(type) {
	case AvroDocument, *AvroDocument, AvroSigner, *AvroSigner, AvroFormField, *AvroFormField:
		return value, nil
	}

	schemaName, err := schemaNameForType(value)
	if err != nil {
		return nil, fmt.Errorf("unsupported message type for Avro conversion: %w", err)
	}

	switch schemaName {
	case "Document":
		return ToAvroDocument(value)
	case "Signer":
		return ToAvroSigner(value)
	default:
		return ToAvroFormField(value)
	}
}
