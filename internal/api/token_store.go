package api

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type tokenItem[T any] struct {
	value     T
	expiresAt time.Time
}

// tokenStore maps random tokens to values that expire after a TTL. Used for
// login sessions and one-shot download links.
type tokenStore[T any] struct {
	mu    sync.Mutex
	items map[string]tokenItem[T]
	now   func() time.Time
}

func newTokenStore[T any]() *tokenStore[T] {
	return &tokenStore[T]{
		items: make(map[string]tokenItem[T]),
		now:   time.Now,
	}
}

func (s *tokenStore[T]) put(value T, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	token = newRandomToken(24)
	s.items[token] = tokenItem[T]{
		value:     value,
		expiresAt: now.Add(ttl),
	}
	return token
}

func (s *tokenStore[T]) get(token string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	v, ok := s.items[token]
	if !ok {
		return zero, false
	}
	if !s.now().Before(v.expiresAt) {
		delete(s.items, token)
		return zero, false
	}
	return v.value, true
}

// take returns the value and removes it, for one-shot tokens.
func (s *tokenStore[T]) take(token string) (T, bool) {
	v, ok := s.get(token)
	if ok {
		s.delete(token)
	}
	return v, ok
}

func (s *tokenStore[T]) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

// purgeExpired drops expired entries and returns how many were removed.
func (s *tokenStore[T]) purgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purgeExpiredLocked(s.now())
}

func (s *tokenStore[T]) purgeExpiredLocked(now time.Time) int {
	n := 0
	for k, v := range s.items {
		if !now.Before(v.expiresAt) {
			delete(s.items, k)
			n++
		}
	}
	return n
}

func (s *tokenStore[T]) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
