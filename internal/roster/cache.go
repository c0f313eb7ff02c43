package roster

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/model"
)

// DefaultTTL how long a loaded roster is served before refetching
const DefaultTTL = 10 * time.Minute

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Info snapshot of the cache state
type Info struct {
	Loaded    bool      `json:"loaded"`
	Players   int       `json:"players"`
	FetchedAt time.Time `json:"fetchedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Cache holds the last roster table until it expires. It is the only
// process-wide shared state: fetches run outside the lock, so two callers
// hitting an expired cache may both refetch.
type Cache struct {
	source Source
	ttl    time.Duration
	clock  Clock

	mu        sync.RWMutex
	table     *model.RosterTable
	expiresAt time.Time
}

// NewCache creates a cache over source. clock may be nil.
func NewCache(source Source, ttl time.Duration, clock Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = realClock{}
	}
	return &Cache{source: source, ttl: ttl, clock: clock}
}

// Get returns the cached table, refetching when missing or expired.
func (c *Cache) Get(ctx context.Context) (*model.RosterTable, error) {
	now := c.clock.Now()

	c.mu.RLock()
	table, expiresAt := c.table, c.expiresAt
	c.mu.RUnlock()

	if table != nil && now.Before(expiresAt) {
		return table, nil
	}
	return c.Refresh(ctx)
}

// Refresh loads the roster unconditionally and replaces the cached table.
// On failure the cache keeps its previous state.
func (c *Cache) Refresh(ctx context.Context) (*model.RosterTable, error) {
	raw, err := c.source.FetchRoster(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Roster fetch failed")
		return nil, wrapSource(err)
	}

	fetchedAt := c.clock.Now()
	table, err := Parse(raw, fetchedAt)
	if err != nil {
		log.Warn().Err(err).Msg("Roster rejected")
		return nil, err
	}

	c.mu.Lock()
	c.table = table
	c.expiresAt = fetchedAt.Add(c.ttl)
	c.mu.Unlock()

	log.Info().
		Int("players", table.Len()).
		Time("expires_at", fetchedAt.Add(c.ttl)).
		Msg("Roster loaded")
	return table, nil
}

// Info reports what is currently cached.
func (c *Cache) Info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return Info{}
	}
	return Info{
		Loaded:    c.clock.Now().Before(c.expiresAt),
		Players:   c.table.Len(),
		FetchedAt: c.table.FetchedAt,
		ExpiresAt: c.expiresAt,
	}
}
