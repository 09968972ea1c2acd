package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"unimarket/internal/usecase/interfaces"
)

const defaultListingImagesBucket = "listing-images"

// S3FileStorage stores listing images in an S3-compatible bucket and hands
// back public URLs.
type S3FileStorage struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var _ interfaces.IFileStorage = (*S3FileStorage)(nil)

// NewS3FileStorage reads bucket and public-URL settings from the environment:
//   - STORAGE_BUCKET (default: listing-images)
//   - STORAGE_PUBLIC_URL (optional; e.g. https://cdn.example.com/uploads)
func NewS3FileStorage(client *s3.Client) *S3FileStorage {
	return &S3FileStorage{
		client:        client,
		bucket:        getenvDefault("STORAGE_BUCKET", defaultListingImagesBucket),
		publicBaseURL: getenvDefault("STORAGE_PUBLIC_URL", ""),
	}
}

func (s *S3FileStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[upload][storage] put object failed bucket=%s key=%s err=%v", s.bucket, key, err)
		return "", err
	}

	return s.publicURL(key), nil
}

func (s *S3FileStorage) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.publicBaseURL, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
