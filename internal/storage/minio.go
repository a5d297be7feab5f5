package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioBackend stores assets in a MinIO (or any S3-compatible) bucket.
type MinioBackend struct {
	client   *minio.Client
	bucket   string
	maxBytes int64
}

// NewMinioBackend creates the client, ensures the bucket exists with a
// public-read policy, and returns a ready-to-use backend.
func NewMinioBackend(endpoint, accessKey, secretKey, bucket string, useSSL bool, maxBytes int64) (*MinioBackend, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	if err := client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return nil, fmt.Errorf("set bucket policy: %w", err)
	}

	return &MinioBackend{client: client, bucket: bucket, maxBytes: maxBytes}, nil
}

// Store streams the content into the bucket under a generated key.
func (b *MinioBackend) Store(ctx context.Context, fieldName, originalName, contentType string, r io.Reader, size int64) (string, error) {
	if !AllowedContentType(contentType) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}
	if b.maxBytes > 0 && size > b.maxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}

	locator := NewLocator(fieldName, originalName, contentType)
	_, err := b.client.PutObject(ctx, b.bucket, locator, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %q: %w", locator, err)
	}
	return locator, nil
}

// Delete removes the object at locator from the bucket. MinIO treats removal
// of a missing key as success, matching local-disk semantics.
func (b *MinioBackend) Delete(ctx context.Context, locator string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, locator, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", locator, err)
	}
	return nil
}

// publicReadPolicy returns an S3 bucket policy JSON allowing anonymous GET on
// all objects.
func publicReadPolicy(bucket string) string {
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    "s3:GetObject",
				"Resource":  fmt.Sprintf("arn:aws:s3:::%s/*", bucket),
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
