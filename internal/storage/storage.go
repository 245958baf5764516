// Package storage persists generated documents such as payslip PDFs.
package storage

import (
	"context"
	"fmt"
	"io"

	"ksa-hris/internal/config"
)

// FileInfo describes a stored object.
type FileInfo struct {
	Key      string
	URL      string
	FileSize int64
	FileType string
}

// FileStorage is implemented by LocalStorage and S3Storage.
type FileStorage interface {
	Save(ctx context.Context, key string, body io.Reader, contentType string) (*FileInfo, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// New picks the backend named by cfg.Payslip.Storage.
func New(cfg *config.Config) (FileStorage, error) {
	switch cfg.Payslip.Storage {
	case "", "local":
		return NewLocalStorage(cfg.Payslip.StorageDir, cfg.Payslip.PublicBaseURL)
	case "s3":
		return NewS3Storage(S3Options{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
		})
	default:
		return nil, fmt.Errorf("unknown payslip storage %q", cfg.Payslip.Storage)
	}
}
