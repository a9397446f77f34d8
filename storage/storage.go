package storage

import (
	"context"
	"errors"
)

// ObjectStore persists opaque documents (sampling audit logs) under a key.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
}

// TestStore is a simple in-memory implementation for testing.
type TestStore struct {
	Objects map[string][]byte
	err     error
}

func NewTestStore() *TestStore {
	return &TestStore{Objects: make(map[string][]byte)}
}

func NewTestStoreWithError() *TestStore {
	return &TestStore{err: errors.New("store unavailable")}
}

func (t *TestStore) Put(ctx context.Context, key string, data []byte) error {
	if t.err != nil {
		return t.err
	}
	t.Objects[key] = append([]byte(nil), data...)
	return nil
}
