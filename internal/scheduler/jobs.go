package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/model"
)

const maintenanceInterval = time.Minute

// RosterRefresher reloads the roster cache.
type RosterRefresher interface {
	Refresh(ctx context.Context) (*model.RosterTable, error)
}

// Purger drops expired server-side state.
type Purger interface {
	PurgeExpired() (sessions, downloads, limiters int)
}

// RegisterRosterPrewarm refreshes the roster every interval, starting now,
// so that requests rarely wait on the source.
func RegisterRosterPrewarm(s *Service, roster RosterRefresher, interval, timeout time.Duration) error {
	_, err := s.AddIntervalJob("roster_prewarm", interval, true, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		// failures are logged by the cache; the previous table stays until it expires
		_, _ = roster.Refresh(ctx)
	})
	return err
}

// RegisterMaintenance purges expired sessions, download links and idle
// rate-limit entries.
func RegisterMaintenance(s *Service, p Purger) error {
	_, err := s.AddIntervalJob("purge_expired", maintenanceInterval, false, func() {
		sessions, downloads, limiters := p.PurgeExpired()
		if sessions+downloads+limiters == 0 {
			return
		}
		log.Debug().
			Int("sessions", sessions).
			Int("downloads", downloads).
			Int("limiters", limiters).
			Msg("Purged expired entries")
	})
	return err
}
