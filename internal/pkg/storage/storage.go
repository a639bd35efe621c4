package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// Uploader stores an object under key and returns its public URL
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// New selects the backend configured in cfg. S3 is used only when a bucket
// and region are set; everything else falls back to local disk.
func New(cfg models.StorageConfig) (Uploader, error) {
	if cfg.Provider == "s3" && cfg.Bucket != "" && cfg.Region != "" {
		awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
		if cfg.AccessKey != "" && cfg.SecretKey != "" {
			awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
		}

		sess, err := session.NewSession(awsCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}

		logger.Info("S3 storage initialized",
			logger.String("bucket", cfg.Bucket),
			logger.String("region", cfg.Region))
		return NewS3Uploader(s3manager.NewUploader(sess), cfg.Bucket, cfg.Region), nil
	}

	logger.Warn("S3 not configured, using local file storage",
		logger.String("dir", cfg.LocalDir))
	return NewLocalUploader(cfg.LocalDir, cfg.BaseURL)
}

// S3Uploader puts objects into a single bucket
type S3Uploader struct {
	uploader s3manageriface.UploaderAPI
	bucket   string
	region   string
}

// NewS3Uploader creates an uploader for bucket
func NewS3Uploader(uploader s3manageriface.UploaderAPI, bucket, region string) *S3Uploader {
	return &S3Uploader{uploader: uploader, bucket: bucket, region: region}
}

// Upload streams body into the bucket
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	out, err := u.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	if out != nil && out.Location != "" {
		return out.Location, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}

// LocalUploader writes objects below a directory served at baseURL/uploads
type LocalUploader struct {
	dir     string
	baseURL string
}

// NewLocalUploader creates dir if needed
func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the root directory files are written to
func (u *LocalUploader) Dir() string {
	return u.dir
}

// Upload copies body to dir/key
func (u *LocalUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := filepath.Clean("/" + key)
	path := filepath.Join(u.dir, clean)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return fmt.Sprintf("%s/uploads%s", u.baseURL, filepath.ToSlash(clean)), nil
}
