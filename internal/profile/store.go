package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Store is the keyed-JSON profile store the rest of the app consumes. Get
// never fails: a missing key, a storage error, or a malformed stored value
// all degrade to the caller-supplied fallback. Set and Remove report success
// as a boolean, mirroring how the PWA treats quota and storage errors.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) Get(ctx context.Context, key string, fallback json.RawMessage) json.RawMessage {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("profile store get %q failed: %v", key, err)
		}
		return fallback
	}
	if !json.Valid(entry.Value) {
		log.Printf("profile store entry %q holds invalid JSON, using fallback", key)
		return fallback
	}
	return entry.Value
}

func (s *Store) Set(ctx context.Context, key string, value json.RawMessage) bool {
	if !json.Valid(value) {
		log.Printf("refusing to store invalid JSON under %q", key)
		return false
	}
	if err := s.repo.Upsert(ctx, key, value); err != nil {
		log.Printf("profile store set %q failed: %v", key, err)
		return false
	}
	return true
}

func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.repo.Delete(ctx, key); err != nil {
		log.Printf("profile store remove %q failed: %v", key, err)
		return false
	}
	return true
}
