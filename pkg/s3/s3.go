package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"donation-report-srv/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

func (s *implS3) Bucket() string {
	return s.bucket
}

func (s *implS3) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	if key == "" {
		return ErrKeyRequired
	}
	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

func (s *implS3) PresignGetObject(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if key == "" {
		return "", ErrKeyRequired
	}
	req, err := s.presign.PresignGetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *awss3.PresignOptions) {
		opts.Expires = expiry
	})
	if err != nil {
		return "", fmt.Errorf("s3: presign %s: %w", key, err)
	}
	return req.URL, nil
}

func (s *implS3) DeleteObject(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: delete %s: %w", key, err)
	}
	return nil
}

func (s *implS3) ObjectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("s3: head %s: %w", key, err)
	}
	return true, nil
}

func validateConfig(cfg config.S3Config) error {
	if cfg.Region == "" {
		return ErrRegionRequired
	}
	if cfg.Bucket == "" {
		return ErrBucketRequired
	}
	return nil
}
