package storage

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectS3 creates an S3 client for the listing-image bucket using
// environment variables.
//
// Supported env vars (local/Supabase-storage friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. https://s3.example.com)
func ConnectS3() *s3.Client {
	client, err := NewS3ClientFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create s3 client: %v", err)
	}
	return client
}

func NewS3ClientFromEnv(ctx context.Context) (*s3.Client, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	// Supabase's S3-compatible storage does not validate AWS credentials the
	// way AWS does, but the SDK requires them to be present.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Path-style addressing is what S3-compatible stores expect.
			o.UsePathStyle = true
		}
	}), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
