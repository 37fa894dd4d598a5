package storage

import (
	"context"
	"io"
	"time"
)

// FileStorage abstracts where uploaded files (resumes, payslips) live.
type FileStorage interface {
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
}
