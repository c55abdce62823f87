package storage

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrStorageUpload(err)
	}
	return objectName, nil
}

func (m *minioStorage) GetObjectURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, m.BucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrStoragePresign(err)
	}
	return presignedURL.String(), nil
}
