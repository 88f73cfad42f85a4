// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"fmt"
)

// Config selects and configures a backend. Only the settings of Kind are used.
type Config struct {
	Kind  Kind
	Dir   string
	Redis RedisOptions
	COS   COSOptions
	S3    S3Options
}

// New builds the Store named by cfg.Kind. An empty Kind means KindLocal.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Kind {
	case KindLocal, "":
		return NewDir(cfg.Dir)
	case KindMemory:
		return NewMemory(), nil
	case KindRedis:
		return NewRedis(ctx, cfg.Redis)
	case KindCOS:
		return NewCOS(ctx, cfg.COS)
	case KindS3:
		return NewS3(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}
