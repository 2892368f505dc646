/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package session

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyKey is returned when a store is used with an empty key.
var ErrEmptyKey = errors.New("weasel(session): empty key")

// Store is the byte storage of a single session.
type Store interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
}

// NewID returns a random session identifier.
func NewID() string {
	return uuid.NewString()
}

// SetBool stores v under key.
func SetBool(ctx context.Context, s Store, key string, v bool) error {
	return s.Set(ctx, key, EncodeBool(v))
}

// GetBool reads a bool stored by SetBool.
func GetBool(ctx context.Context, s Store, key string) (v, ok bool, err error) {
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, false, err
	}
	v, ok = DecodeBool(b)
	return v, ok, nil
}

// SetInt64 stores v under key.
func SetInt64(ctx context.Context, s Store, key string, v int64) error {
	return s.Set(ctx, key, EncodeInt64(v))
}

// GetInt64 reads an int64 stored by SetInt64. A value shorter than eight
// bytes reads as absent.
func GetInt64(ctx context.Context, s Store, key string) (int64, bool, error) {
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	v, ok := DecodeInt64(b)
	return v, ok, nil
}

// SetTime stores t under key.
func SetTime(ctx context.Context, s Store, key string, t time.Time) error {
	b, err := EncodeTime(t)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, b)
}

// GetTime reads a time stored by SetTime.
func GetTime(ctx context.Context, s Store, key string) (time.Time, bool, error) {
	b, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	return DecodeTime(b)
}

// MemoryStore is an in-process Store. The zero value is ready to use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Set stores a copy of value.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = slices.Clone(value)
	return nil
}

// Get returns a copy of the stored value.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
