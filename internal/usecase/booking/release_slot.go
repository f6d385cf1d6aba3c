package booking

import (
	"context"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
)

type ReleaseSlotInput struct {
	Date string
	Time string
}

type ReleaseSlot struct {
	repo domain.Repository
}

func NewReleaseSlot(repo domain.Repository) *ReleaseSlot {
	return &ReleaseSlot{repo: repo}
}

// Execute drops any hold on (date, time). Releasing a slot nobody
// holds is fine; the client cancelling twice must not see an error.
func (uc *ReleaseSlot) Execute(
	ctx context.Context,
	in ReleaseSlotInput,
) error {
	return uc.repo.DeleteReservation(ctx, in.Date, in.Time)
}
