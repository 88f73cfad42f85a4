// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Store loads and saves assets by name.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// Kind names a Store backend.
type Kind string

const (
	KindLocal  Kind = "local"
	KindMemory Kind = "memory"
	KindRedis  Kind = "redis"
	KindCOS    Kind = "cos"
	KindS3     Kind = "s3"
)

// Kinds lists every supported backend.
var Kinds = []Kind{KindLocal, KindMemory, KindRedis, KindCOS, KindS3}

// ParseKind parses a backend name, case insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Kinds {
		if k == v {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// checkName rejects names that are empty or would resolve outside the store.
func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// objectKey joins a key prefix and an asset name.
func objectKey(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
