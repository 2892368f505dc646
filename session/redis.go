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
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultPrefix is prepended to every Redis key.
const DefaultPrefix = "weasel:session:"

var (
	// ErrNilClient is returned by NewRedisStore for a nil client.
	ErrNilClient = errors.New("weasel(session): redis client is required")
	// ErrEmptySessionID is returned by NewRedisStore for an empty session id.
	ErrEmptySessionID = errors.New("weasel(session): empty session id")
)

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix replaces DefaultPrefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

// WithTTL makes every Set refresh the expiry of its key. Zero keeps keys
// forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) { s.ttl = ttl }
}

// WithLogger sets the logger used to trace Redis failures.
func WithLogger(l *zap.Logger) RedisOption {
	return func(s *RedisStore) {
		if l != nil {
			s.log = l
		}
	}
}

// RedisStore keeps the values of one session in Redis under
// prefix + session id + ":" + key.
type RedisStore struct {
	client redis.UniversalClient
	id     string
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisStore returns the Store of session id backed by client.
func NewRedisStore(client redis.UniversalClient, id string, opts ...RedisOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if id == "" {
		return nil, ErrEmptySessionID
	}
	s := &RedisStore{client: client, id: id, prefix: DefaultPrefix, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ID returns the session id.
func (s *RedisStore) ID() string {
	return s.id
}

func (s *RedisStore) key(k string) string {
	return s.prefix + s.id + ":" + k
}

// Set stores value with the configured TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		s.log.Warn("weasel: session set failed", zap.String("session", s.id), zap.String("key", key), zap.Error(err))
		return fmt.Errorf("weasel(session): set %s: %w", key, err)
	}
	return nil
}

// Get returns the stored value. A missing key is not an error.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		s.log.Warn("weasel: session get failed", zap.String("session", s.id), zap.String("key", key), zap.Error(err))
		return nil, false, fmt.Errorf("weasel(session): get %s: %w", key, err)
	}
	return b, true, nil
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
