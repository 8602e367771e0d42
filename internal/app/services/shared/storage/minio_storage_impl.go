package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	minioStorageInstance contracts.StorageService
	onceMinioStorage     sync.Once
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, driverConfig *config.DriverConfig, logger *zap.Logger) contracts.StorageService {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  driverConfig.Minio.BucketName,
			Log:         logger,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadProfilePhoto(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	requestID := utils.RequestIDFromContext(ctx)

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadProfilePhoto error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("object_name", objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioUpload(err)
	}

	m.Log.Info("minioStorage.UploadProfilePhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
	)
	return fmt.Sprintf("/%s/%s", m.BucketName, objectName), nil
}
