// Package metadata is a small key/value repository over the local SQLite
// database. It is the persistence layer for session state: access and
// refresh tokens, the demo flag, and the cached user profile survive
// process restarts here.
package metadata

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
