package usecases

import (
	"context"
	"io"
)

//go:generate mockgen -source=file_store_port.go -destination=../../../test/unit/doubles/signing/usecases/file_store_port_mock.go -package=usecases -mock_names=FileStore=MockFileStore

// FileStore keeps document blobs under opaque keys. Source uploads and
// finalized outputs both live here.
type FileStore interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadSeekCloser, error)
	Delete(ctx context.Context, key string) error
}
