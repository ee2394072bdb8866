package kvstore

import "context"

// KeyValue is one key/value pair for batch writes.
type KeyValue struct {
	Key   string
	Value string
}

// Store is the asynchronous string-keyed persistence surface the planner
// repositories are built on. Every method takes a context and every single
// key operation is atomic; MultiSet and MultiRemove apply their whole batch
// as one logical operation.
//
// Get returns [ErrKeyNotFound] for absent keys. MultiGet omits absent keys
// from its result instead of failing.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)
	MultiSet(ctx context.Context, pairs []KeyValue) error
	MultiRemove(ctx context.Context, keys []string) error
	GetAllKeys(ctx context.Context) ([]string, error)
}
