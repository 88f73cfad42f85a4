// SPDX-License-Identifier: EPL-2.0

package store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ossrs/go-oryx-lib/logger"
	"github.com/tencentyun/cos-go-sdk-v5"
)

// cosObjects is the subset of cos.ObjectService used by COS
type cosObjects interface {
	Get(ctx context.Context, name string, opt *cos.ObjectGetOptions, id ...string) (*cos.Response, error)
	Put(ctx context.Context, name string, r io.Reader, opt *cos.ObjectPutOptions) (*cos.Response, error)
}

// COS stores assets as objects in a Tencent Cloud COS bucket.
type COS struct {
	objects cosObjects
	prefix  string
}

// COSOptions configures NewCOS.
type COSOptions struct {
	// BucketURL like https://<bucket>.cos.<region>.myqcloud.com
	BucketURL string
	SecretID  string
	SecretKey string
	Prefix    string
}

func NewCOS(ctx context.Context, opts COSOptions) (*COS, error) {
	if opts.BucketURL == "" {
		return nil, fmt.Errorf("%w: cos bucket url", ErrMissingSetting)
	}
	if opts.SecretID == "" || opts.SecretKey == "" {
		return nil, fmt.Errorf("%w: cos secret", ErrMissingSetting)
	}

	u, err := url.Parse(opts.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("parse cos url %v: %w", opts.BucketURL, err)
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Transport: &cos.AuthorizationTransport{SecretID: opts.SecretID, SecretKey: opts.SecretKey},
	})

	logger.Tf(ctx, "cos store ok, bucket=%v, prefix=%v, secret=%vB", u.Host, opts.Prefix, len(opts.SecretKey))
	return &COS{objects: client.Object, prefix: opts.Prefix}, nil
}

func (c *COS) Load(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	key := objectKey(c.prefix, name)
	resp, err := c.objects.Get(ctx, key, nil)
	if cos.IsNotFoundError(err) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("cos get %v: %w", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cos read %v: %w", key, err)
	}

	logger.Tf(ctx, "cos load key=%v, size=%vB", key, len(data))
	return data, nil
}

func (c *COS) Save(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	key := objectKey(c.prefix, name)
	if _, err := c.objects.Put(ctx, key, bytes.NewReader(data), nil); err != nil {
		return fmt.Errorf("cos put %v: %w", key, err)
	}

	logger.Tf(ctx, "cos save key=%v, size=%vB", key, len(data))
	return nil
}

var _ Store = (*COS)(nil)
