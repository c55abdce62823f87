package contracts

import (
	"context"
	"io"
	"time"
)

type Storage interface {
	UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error)
	GetObjectURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
