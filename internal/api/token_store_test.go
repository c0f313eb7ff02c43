package api

import (
	"testing"
	"time"
)

func TestTokenStoreExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	s := newTokenStore[string]()
	s.now = func() time.Time { return now }

	token := s.put("value", time.Minute)
	if token == "" {
		t.Fatalf("empty token")
	}
	if v, ok := s.get(token); !ok || v != "value" {
		t.Fatalf("get=%q,%v", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok := s.get(token); ok {
		t.Fatalf("expired token still valid")
	}
	if s.count() != 0 {
		t.Fatalf("expired token not removed")
	}
}

func TestTokenStoreTakeIsOneShot(t *testing.T) {
	t.Parallel()

	s := newTokenStore[int]()
	token := s.put(42, time.Minute)

	if v, ok := s.take(token); !ok || v != 42 {
		t.Fatalf("take=%d,%v", v, ok)
	}
	if _, ok := s.take(token); ok {
		t.Fatalf("second take succeeded")
	}
}

func TestTokenStorePurge(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	s := newTokenStore[int]()
	s.now = func() time.Time { return now }

	s.put(1, time.Second)
	s.put(2, time.Hour)
	now = now.Add(time.Minute)

	if n := s.purgeExpired(); n != 1 {
		t.Fatalf("purged=%d, want 1", n)
	}
	if s.count() != 1 {
		t.Fatalf("len=%d, want 1", s.count())
	}
}
