package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store keeps uploaded media in a MinIO bucket. Files are publicly
// served from urlEndpoint, typically a CDN fronting the bucket.
type Store struct {
	client      *minio.Client
	bucket      string
	urlEndpoint string
}

func NewStore(ctx context.Context, endpoint, accessKey, secretKey, bucket, urlEndpoint string, useSSL bool) (*Store, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &Store{client: client, bucket: bucket, urlEndpoint: strings.TrimRight(urlEndpoint, "/")}, nil
}

// Upload stores bytes under the given object key.
func (s *Store) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Remove deletes an object.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL returns the address a stored object is served from.
func (s *Store) PublicURL(key string) string {
	return s.urlEndpoint + "/" + key
}
