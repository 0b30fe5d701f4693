package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"physrisk-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// defaultConnectTimeout is the maximum time to wait for the initial probe.
const defaultConnectTimeout = 5 * time.Second

var (
	instance *minio.Client
	mu       sync.RWMutex
)

// Connect initializes the shared MinIO client for the hazard array store.
// Returns the existing instance if already connected; a failed attempt may be
// retried by calling Connect again.
func Connect(ctx context.Context, cfg config.S3Config) (*minio.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	// Verify the bucket is reachable before handing the client out.
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if _, err := client.BucketExists(connectCtx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to reach bucket %q: %w", cfg.Bucket, err)
	}

	instance = client
	return instance, nil
}

// Disconnect resets the singleton instance so a new connection can be made.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
}
