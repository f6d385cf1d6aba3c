package booking

import (
	"context"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/models"
)

type UpdateBookingStatusInput struct {
	ID     string
	Status string
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute sets a booking's status. The status must be one of the
// known values; transitions between them are unrestricted (see
// domain.Status). Unknown ids map to domain.ErrNotFound.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	if !domain.Status(in.Status).Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetBooking(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	previous := b.Status
	b.Status = in.Status

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorAdmin,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"from": previous, "to": in.Status},
	})

	return b, nil
}
