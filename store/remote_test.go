// SPDX-License-Identifier: EPL-2.0

package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-redis/redis/v8"
	"github.com/tencentyun/cos-go-sdk-v5"
)

var errBackend = errors.New("backend unavailable")

// fakeRedis keeps keys in a map
type fakeRedis struct {
	mu   sync.Mutex
	keys map[string][]byte
	fail bool
}

func newFakeRedis() *fakeRedis { return &fakeRedis{keys: make(map[string][]byte)} }

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return redis.NewStringResult("", errBackend)
	}
	v, ok := f.keys[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return redis.NewStatusResult("", errBackend)
	}
	f.keys[key] = bytes.Clone(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedis(t *testing.T) {
	t.Parallel()

	fake := newFakeRedis()
	exercise(t, &Redis{rdb: fake, prefix: "audtool"})

	if _, ok := fake.keys["audtool:a.wav"]; !ok {
		t.Errorf("keys = %v, want audtool:a.wav", fake.keys)
	}
}

func TestRedis_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := &Redis{rdb: &fakeRedis{fail: true}}

	if _, err := r.Load(ctx, "a.wav"); !errors.Is(err, errBackend) || errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want backend error", err)
	}
	if err := r.Save(ctx, "a.wav", nil); !errors.Is(err, errBackend) {
		t.Errorf("Save() error = %v, want backend error", err)
	}
}

// fakeCOS keeps objects in a map
type fakeCOS struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newFakeCOS() *fakeCOS { return &fakeCOS{objects: make(map[string][]byte)} }

func (f *fakeCOS) Get(_ context.Context, name string, _ *cos.ObjectGetOptions, _ ...string) (*cos.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errBackend
	}
	v, ok := f.objects[name]
	if !ok {
		u, _ := url.Parse("https://bucket.cos.ap-guangzhou.myqcloud.com/" + name)
		return nil, &cos.ErrorResponse{
			Response: &http.Response{
				StatusCode: http.StatusNotFound,
				Request:    &http.Request{Method: http.MethodGet, URL: u},
			},
			Code: "NoSuchKey",
		}
	}
	return &cos.Response{Response: &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(v)),
	}}, nil
}

func (f *fakeCOS) Put(_ context.Context, name string, r io.Reader, _ *cos.ObjectPutOptions) (*cos.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errBackend
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	f.objects[name] = data
	return &cos.Response{Response: &http.Response{StatusCode: http.StatusOK}}, nil
}

func TestCOS(t *testing.T) {
	t.Parallel()

	fake := newFakeCOS()
	exercise(t, &COS{objects: fake, prefix: "audio"})

	if _, ok := fake.objects["audio/a.wav"]; !ok {
		t.Errorf("objects = %v, want audio/a.wav", fake.objects)
	}
}

func TestCOS_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := &COS{objects: &fakeCOS{fail: true}}

	if _, err := c.Load(ctx, "a.wav"); !errors.Is(err, errBackend) {
		t.Errorf("Load() error = %v, want backend error", err)
	}
	if err := c.Save(ctx, "a.wav", nil); !errors.Is(err, errBackend) {
		t.Errorf("Save() error = %v, want backend error", err)
	}
}

// fakeS3 keeps objects in a map keyed by bucket/key
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: make(map[string][]byte)} }

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errBackend
	}
	v, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(v))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return nil, errBackend
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if aws.ToInt64(in.ContentLength) != int64(len(data)) {
		return nil, errors.New("content length mismatch")
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3(t *testing.T) {
	t.Parallel()

	fake := newFakeS3()
	exercise(t, &S3{client: fake, bucket: "media", prefix: "assets"})

	if _, ok := fake.objects["media/assets/a.wav"]; !ok {
		t.Errorf("objects = %v, want media/assets/a.wav", fake.objects)
	}
}

func TestS3_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := &S3{client: &fakeS3{fail: true}, bucket: "media"}

	if _, err := s.Load(ctx, "a.wav"); !errors.Is(err, errBackend) {
		t.Errorf("Load() error = %v, want backend error", err)
	}
	if err := s.Save(ctx, "a.wav", nil); !errors.Is(err, errBackend) {
		t.Errorf("Save() error = %v, want backend error", err)
	}
}
