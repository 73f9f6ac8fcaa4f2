package storage

import (
	"bytes"
	"context"
	"fmt"
	"sangha-service/internal/app/contracts"
	"sangha-service/internal/pkg/constvars"
	"sangha-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioArchive struct {
	Client     *minio.Client
	BucketName string
}

func NewMinioArchive(client *minio.Client, bucketName string) contracts.ArchiveService {
	return &minioArchive{
		Client:     client,
		BucketName: bucketName,
	}
}

func (s *minioArchive) ArchivePayload(ctx context.Context, transactionID string, payload []byte) error {
	objectName := fmt.Sprintf("payloads/%s.json", transactionID)
	_, err := s.Client.PutObject(
		ctx,
		s.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMEApplicationJSON},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.BucketName)
	}
	return nil
}
