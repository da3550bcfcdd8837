// Package s3 builds the object-storage client for image uploads.
package s3

import (
	"github.com/Laisky/errors/v2"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config carries the S3-compatible endpoint settings.
type Config struct {
	Endpoint,
	AccessKey,
	SecretKey string
	UseSSL bool
}

// New creates a minio client for the configured endpoint.
func New(cfg Config) (*minio.Client, error) {
	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "new s3 client")
	}

	return cli, nil
}
