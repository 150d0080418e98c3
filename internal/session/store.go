// Package session implements the server-side session store.  A session is
// an opaque token handed to the client in an HTTP-only cookie; the value
// behind it lives here with a TTL.  The store is deliberately a small
// key-value abstraction so the authorization gate takes it as an injected
// dependency instead of reaching for global state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token does not resolve to a live session,
// either because it never existed or because its TTL elapsed.
var ErrNotFound = errors.New("session not found")

// Data is the value stored behind a session token.
type Data struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}

// Store is the key-value-with-TTL contract the gate and the auth handlers
// depend on.
type Store interface {
	Create(ctx context.Context, token string, d Data, ttl time.Duration) error
	Get(ctx context.Context, token string) (Data, error)
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared between instances.  Values are JSON; expiry is native Redis TTL.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore returns a Store backed by the given client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "sess:"}
}

func (s *RedisStore) Create(ctx context.Context, token string, d Data, ttl time.Duration) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.prefix+token, b, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Data, error) {
	b, err := s.rdb.Get(ctx, s.prefix+token).Bytes()
	if err == redis.Nil {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, err
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, s.prefix+token).Err()
}

// MemoryStore is the fallback used when Redis is unreachable at startup and
// the implementation behind tests.  Entries expire lazily on read.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]memEntry
}

type memEntry struct {
	d   Data
	exp time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]memEntry)}
}

func (s *MemoryStore) Create(_ context.Context, token string, d Data, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = memEntry{d: d, exp: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[token]
	if !ok {
		return Data{}, ErrNotFound
	}
	if time.Now().After(e.exp) {
		delete(s.data, token)
		return Data{}, ErrNotFound
	}
	return e.d, nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
	return nil
}
