package cleanup

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/timezone"
)

// Purger removes expired slot holds and stale bookings. The default
// deployment runs it lazily from availability reads; the sweeper runs
// the same Purger on a timer.
type Purger interface {
	Run(ctx context.Context)
}

// Noop is wired into the availability path when the sweeper owns
// cleanup instead.
type Noop struct{}

func (Noop) Run(context.Context) {}

type StorePurger struct {
	repo domain.Repository
	tz   string
	log  zerolog.Logger
}

func NewStorePurger(repo domain.Repository, tz string, log zerolog.Logger) *StorePurger {
	return &StorePurger{repo: repo, tz: tz, log: log}
}

// Run is best-effort: purge failures are logged and never surfaced to
// the read that triggered them.
func (p *StorePurger) Run(ctx context.Context) {
	now := timezone.NowIn(p.tz)

	if n, err := p.repo.PurgeExpiredReservations(ctx, now); err != nil {
		p.log.Error().Err(err).Msg("purge expired reservations failed")
	} else if n > 0 {
		p.log.Debug().Int64("purged", n).Msg("expired reservations removed")
	}

	cutoff := now.Add(-domain.StaleBookingRetention)
	if n, err := p.repo.PurgeStaleBookings(ctx, cutoff); err != nil {
		p.log.Error().Err(err).Msg("purge stale bookings failed")
	} else if n > 0 {
		p.log.Debug().Int64("purged", n).Msg("stale bookings removed")
	}
}
