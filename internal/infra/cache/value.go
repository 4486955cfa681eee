package cache

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// As resolves a cache entry to a concrete type. In-process caches hold live
// values, so the type assertion is enough. The redis cache returns entries as
// the raw msgpack bytes it stored, which are decoded here.
func As[T any](value any) (T, error) {
	if typed, ok := value.(T); ok {
		return typed, nil
	}

	if raw, ok := value.([]byte); ok {
		var typed T
		if err := msgpack.Unmarshal(raw, &typed); err != nil {
			var zero T
			return zero, fmt.Errorf("decoding cache entry: %w", err)
		}
		return typed, nil
	}

	var zero T
	return zero, fmt.Errorf("unexpected cache entry of type %T", value)
}
