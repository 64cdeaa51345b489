// Package storage fetches uploaded resume files from S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNotConfigured is returned when no bucket has been configured.
var ErrNotConfigured = errors.New("object storage is not configured")

// Downloader fetches an object's bytes by key.
type Downloader interface {
	Download(ctx context.Context, key string) ([]byte, error)
}

// Options describes an S3 or Cloudflare R2 bucket.
type Options struct {
	Bucket          string
	Endpoint        string // empty means AWS S3
	Region          string // "auto" for R2
	AccessKeyID     string
	SecretAccessKey string
}

// ObjectGetter is the part of *s3.Client used here.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Downloader downloads objects from a single bucket.
type S3Downloader struct {
	client   ObjectGetter
	bucket   string
	attempts int
}

// NewS3Client builds an S3 client for opts. Static credentials are used when
// both keys are set, otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, opts Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = "auto"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewS3Downloader connects to the bucket described by opts.
func NewS3Downloader(ctx context.Context, opts Options) (*S3Downloader, error) {
	if opts.Bucket == "" {
		return nil, ErrNotConfigured
	}
	client, err := NewS3Client(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewDownloader(client, opts.Bucket), nil
}

// NewDownloader wraps an existing client. Downloads are retried up to three times.
func NewDownloader(client ObjectGetter, bucket string) *S3Downloader {
	return &S3Downloader{client: client, bucket: bucket, attempts: 3}
}

// Download fetches key from the bucket, retrying transient failures.
func (d *S3Downloader) Download(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("object key is required")
	}
	return Retry(ctx, d.attempts, func() ([]byte, error) {
		return d.get(ctx, key)
	})
}

func (d *S3Downloader) get(ctx context.Context, key string) ([]byte, error) {
	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer func() { _ = out.Body.Close() }()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}
