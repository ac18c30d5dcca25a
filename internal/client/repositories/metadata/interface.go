// Package metadata is the durable key/value store behind the mock session:
// the auth token and the public profile live here between runs.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) for a
// missing key; Delete of a missing key is not an error. Clear empties the
// store.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
