package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"streaming-catalog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MediaService turns stored video locations into playable URLs. Locations
// that are already absolute http(s) URLs pass through; anything else is an
// object key in the bucket and gets a presigned GET URL.
type MediaService struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	logger *logrus.Logger
}

func NewMinIOClient(cfg *config.MinIOConfig) (*minio.Client, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}
	return client, nil
}

func NewMediaService(client *minio.Client, cfg *config.MinIOConfig, logger *logrus.Logger) *MediaService {
	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = time.Hour
	}

	logger.WithFields(logrus.Fields{
		"endpoint": client.EndpointURL().Host,
		"bucket":   cfg.BucketName,
		"expiry":   expiry,
	}).Info("MinIO media service initialized")

	return &MediaService{
		client: client,
		bucket: cfg.BucketName,
		expiry: expiry,
		logger: logger,
	}
}

// EnsureBucket checks that the video bucket exists.
func (s *MediaService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucket)
	}
	return nil
}

// PlaybackURL resolves location and returns the URL with its validity. A zero
// duration means the URL does not expire. A nil service passes every location
// through unchanged.
func (s *MediaService) PlaybackURL(ctx context.Context, location string) (string, time.Duration, error) {
	if s == nil || location == "" || isAbsoluteURL(location) {
		return location, 0, nil
	}

	objectKey := strings.TrimPrefix(location, "/")
	objectKey = strings.TrimPrefix(objectKey, s.bucket+"/")

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, objectKey, s.expiry, url.Values{})
	if err != nil {
		s.logger.WithError(err).WithField("objectKey", objectKey).Error("Failed to presign playback URL")
		return "", 0, fmt.Errorf("failed to presign playback URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"objectKey": objectKey,
		"expiry":    s.expiry,
	}).Debug("Generated playback URL")

	return presigned.String(), s.expiry, nil
}

func isAbsoluteURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
