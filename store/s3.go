// SPDX-License-Identifier: EPL-2.0

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ossrs/go-oryx-lib/logger"
)

// DefaultS3Region is used when S3Options.Region is empty.
const DefaultS3Region = "us-west-2"

// s3API is the subset of *s3.Client used by S3
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 stores assets as objects in an Amazon S3 bucket. Credentials come from
// the default AWS chain (environment, shared config, instance role).
type S3 struct {
	client s3API
	bucket string
	prefix string
}

// S3Options configures NewS3.
type S3Options struct {
	Bucket string
	Region string
	Prefix string
}

func NewS3(ctx context.Context, opts S3Options) (*S3, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("%w: s3 bucket", ErrMissingSetting)
	}
	if opts.Region == "" {
		opts.Region = DefaultS3Region
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	logger.Tf(ctx, "s3 store ok, bucket=%v, region=%v, prefix=%v", opts.Bucket, opts.Region, opts.Prefix)
	return &S3{client: s3.NewFromConfig(cfg), bucket: opts.Bucket, prefix: opts.Prefix}, nil
}

func (s *S3) Load(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	key := objectKey(s.prefix, name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("s3 get %v: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %v: %w", key, err)
	}

	logger.Tf(ctx, "s3 load key=%v, size=%vB", key, len(data))
	return data, nil
}

func (s *S3) Save(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	key := objectKey(s.prefix, name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("s3 put %v: %w", key, err)
	}

	logger.Tf(ctx, "s3 save key=%v, size=%vB", key, len(data))
	return nil
}

var _ Store = (*S3)(nil)
