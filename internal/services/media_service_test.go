package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"streaming-catalog/internal/config"
)

func newTestMediaService(t *testing.T) *MediaService {
	t.Helper()

	cfg := &config.MinIOConfig{
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		BucketName:      "videos",
		Region:          "us-east-1",
		UseSSL:          false,
		PresignExpiry:   15 * time.Minute,
	}
	client, err := NewMinIOClient(cfg)
	assertNoError(t, err)
	return NewMediaService(client, cfg, newTestLogger())
}

func TestMediaServicePlaybackURL(t *testing.T) {
	ctx := context.Background()
	svc := newTestMediaService(t)

	t.Run("absolute urls pass through", func(t *testing.T) {
		got, expiry, err := svc.PlaybackURL(ctx, "https://cdn.example.com/coco.mp4")
		assertNoError(t, err)
		if got != "https://cdn.example.com/coco.mp4" || expiry != 0 {
			t.Errorf("unexpected result %q %v", got, expiry)
		}
	})

	t.Run("object keys are presigned", func(t *testing.T) {
		got, expiry, err := svc.PlaybackURL(ctx, "/videos/peliculas/roma.mp4")
		assertNoError(t, err)
		if expiry != 15*time.Minute {
			t.Errorf("expected 15m expiry, got %v", expiry)
		}
		if !strings.HasPrefix(got, "http://localhost:9000/videos/peliculas/roma.mp4?") {
			t.Errorf("unexpected presigned url %q", got)
		}
		if !strings.Contains(got, "X-Amz-Signature=") {
			t.Errorf("presigned url is not signed: %q", got)
		}
	})

	t.Run("nil service passes through", func(t *testing.T) {
		var none *MediaService
		got, _, err := none.PlaybackURL(ctx, "peliculas/roma.mp4")
		assertNoError(t, err)
		if got != "peliculas/roma.mp4" {
			t.Errorf("unexpected result %q", got)
		}
	})
}
