package booking

import (
	"context"

	"github.com/sharpcut-studio/booking-api/internal/cleanup"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/httperr"
)

type AvailabilityOutput struct {
	Date        string   `json:"date"`
	BookedTimes []string `json:"bookedTimes"`
}

type GetAvailability struct {
	repo   domain.Repository
	purger cleanup.Purger
}

func NewGetAvailability(
	repo domain.Repository,
	purger cleanup.Purger,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		purger: purger,
	}
}

// Execute returns the time labels blocked on a date. Only confirmed
// bookings block; holds are never consulted here, so an orphaned hold
// can never lock a slot out of the calendar.
//
// Cleanup piggybacks on this read: expired holds and stale bookings are
// purged before the query (lazy mode wires a real purger, sweep mode a
// no-op).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*AvailabilityOutput, error) {

	// Purge runs before validation: the read is the cleanup trigger
	// even when the caller forgot the date.
	uc.purger.Run(ctx)

	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}

	times, err := uc.repo.ListConfirmedTimes(ctx, date)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(times))
	booked := make([]string, 0, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		booked = append(booked, t)
	}

	return &AvailabilityOutput{
		Date:        date,
		BookedTimes: booked,
	}, nil
}
