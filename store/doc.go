// SPDX-License-Identifier: EPL-2.0

// Package store persists audio assets by logical name.
//
// A Store only knows names and bytes. Backends:
//
//   - Dir: one file per asset inside a local directory
//   - Memory: process local map, used by tests and one-shot pipelines
//   - Redis: one key per asset (github.com/go-redis/redis/v8)
//   - COS: Tencent Cloud object storage (github.com/tencentyun/cos-go-sdk-v5)
//   - S3: Amazon S3 (github.com/aws/aws-sdk-go-v2)
//
// New builds the backend named by Config.Kind:
//
//	st, err := store.New(ctx, store.Config{Kind: store.KindLocal, Dir: "temporal"})
//	data, err := st.Load(ctx, "audio1.wav")
//	if errors.Is(err, store.ErrNotFound) {
//	    // no such asset
//	}
//
// Two Save calls on the same name race and the last writer wins.
package store
