package booking

import (
	"context"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes a booking and any hold on its slot, so deleting a
// confirmed booking frees the slot immediately instead of leaving an
// orphaned reservation behind. An unknown id returns ErrNotFound and
// touches nothing.
func (uc *DeleteBooking) Execute(ctx context.Context, id string) error {

	b, err := uc.repo.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, b.Date, b.Time); err != nil {
		// The booking is already gone; a failed cascade only delays the
		// hold's removal until its expiry purge.
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAdmin,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"date": b.Date, "time": b.Time},
	})

	return nil
}
