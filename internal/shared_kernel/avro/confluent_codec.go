package avro

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"signflow-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute

	_magicByte = 0x00
)

// SchemaRegistry defines the interface for schema registry operations
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

var _ SchemaRegistry = (*srclient.SchemaRegistryClient)(nil)

// ConfluentAvroCodec implements Codec interface using Confluent Avro wire
// format and Schema Registry. Values are serialized with goavro against the
// registered schema, framed as magic byte plus big-endian schema ID.
type ConfluentAvroCodec struct {
	prototype      any
	schemaRegistry SchemaRegistry
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

var subjectByMessage = map[string]string{
	"Document":  "documents-value",
	"Signer":    "signers-value",
	"FormField": "form_fields-value",
}

var schemaByMessage = map[string]string{
	"Document":  documentSchema,
	"Signer":    signerSchema,
	"FormField": formFieldSchema,
}

// NewConfluentAvroCodec creates a new Confluent Avro codec backed by the
// schema registry at the given URL
func NewConfluentAvroCodec(prototype any, schemaRegistryURL string) (*ConfluentAvroCodec, error) {
	return NewConfluentAvroCodecWithRegistry(prototype, srclient.CreateSchemaRegistryClient(schemaRegistryURL))
}

// NewConfluentAvroCodecWithRegistry creates a codec with an explicit registry
func NewConfluentAvroCodecWithRegistry(prototype any, schemaRegistry SchemaRegistry) (*ConfluentAvroCodec, error) {
	schemaCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e4,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	codecCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e4,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		prototype:      prototype,
		schemaRegistry: schemaRegistry,
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

// Encode encodes a value into the Confluent Avro wire format
func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	avroValue, err := convertToAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schemaName, err := schemaNameForType(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	schema, err := c.getOrRegisterSchema(schemaName)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	codec, err := c.codecForSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("building codec: %w", err)
	}

	textual, err := json.Marshal(avroValue)
	if err != nil {
		return nil, fmt.Errorf("marshaling to JSON: %w", err)
	}

	native, _, err := codec.NativeFromTextual(textual)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro native: %w", err)
	}

	payload, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encoding Avro binary: %w", err)
	}

	framed := make([]byte, 0, len(payload)+5)
	framed = append(framed, _magicByte)
	framed = binary.BigEndian.AppendUint32(framed, uint32(schema.ID()))
	framed = append(framed, payload...)

	return framed, nil
}

// Decode decodes a Confluent Avro wire format message back into the
// Avro-compatible struct for the configured prototype
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("message too short for Confluent wire format: %d bytes", len(data))
	}
	if data[0] != _magicByte {
		return nil, fmt.Errorf("unexpected magic byte: %#x", data[0])
	}

	schemaID := int(binary.BigEndian.Uint32(data[1:5]))
	schema, err := c.schemaByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema %d: %w", schemaID, err)
	}

	codec, err := c.codecForSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("building codec: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[5:])
	if err != nil {
		return nil, fmt.Errorf("decoding Avro binary: %w", err)
	}

	textual, err := codec.TextualFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	prototypeValue, err := convertToAvroStruct(c.prototype)
	if err != nil {
		return nil, fmt.Errorf("resolving prototype: %w", err)
	}

	instance := reflect.New(reflect.TypeOf(prototypeValue)).Interface()
	if err := json.Unmarshal(textual, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from JSON: %w", err)
	}

	return instance, nil
}

func (c *ConfluentAvroCodec) getOrRegisterSchema(schemaName string) (*srclient.Schema, error) {
	subject := subjectByMessage[schemaName]

	cached, err := c.schemaCache.GetOrSet(context.Background(), subject, _defaultSchemaCacheTTL, func() (any, error) {
		schema, err := c.schemaRegistry.GetLatestSchema(subject)
		if err == nil {
			return schema, nil
		}

		return c.schemaRegistry.CreateSchema(subject, schemaByMessage[schemaName], srclient.Avro)
	})
	if err != nil {
		return nil, err
	}

	return cached.(*srclient.Schema), nil
}

func (c *ConfluentAvroCodec) schemaByID(schemaID int) (*srclient.Schema, error) {
	key := strconv.Itoa(schemaID)

	cached, err := c.schemaCache.GetOrSet(context.Background(), key, _defaultSchemaCacheTTL, func() (any, error) {
		return c.schemaRegistry.GetSchema(schemaID)
	})
	if err != nil {
		return nil, err
	}

	return cached.(*srclient.Schema), nil
}

func (c *ConfluentAvroCodec) codecForSchema(schema *srclient.Schema) (*goavro.Codec, error) {
	key := strconv.Itoa(schema.ID())

	cached, err := c.codecCache.GetOrSet(context.Background(), key, _defaultCodecCacheTTL, func() (any, error) {
		return goavro.NewCodec(schema.Schema())
	})
	if err != nil {
		return nil, err
	}

	return cached.(*goavro.Codec), nil
}
