package booking

import (
	"context"
	"errors"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/models"
	"github.com/sharpcut-studio/booking-api/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ReserveSlotInput struct {
	Date string
	Time string
}

type ReserveSlotOutput struct {
	ReservedSlot *models.ReservedSlot
	ExpiresIn    int
}

// ======================================================
// USE CASE
// ======================================================

type ReserveSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewReserveSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *ReserveSlot {
	return &ReserveSlot{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute grants a 10-minute exclusive hold on (date, time).
//
// A confirmed booking on the slot fails fast with slot_already_booked.
// Otherwise the hold is inserted and the store's unique constraint
// decides the race: of N concurrent attempts exactly one insert lands,
// the rest get slot_just_reserved. There is no in-process locking and
// no read-then-write on the reservation table.
//
// An expired hold that has not been purged yet still occupies the row
// and produces slot_just_reserved until the next purge runs. That
// window is bounded by the cleanup policy and left as-is on purpose.
func (uc *ReserveSlot) Execute(
	ctx context.Context,
	in ReserveSlotInput,
) (*ReserveSlotOutput, error) {

	booked, err := uc.repo.HasConfirmedBooking(ctx, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, httperr.ErrBusiness("slot_already_booked")
	}

	hold := domain.NewHold(in.Date, in.Time, timezone.NowIn(uc.tz))

	if err := uc.repo.CreateReservation(ctx, hold); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			return nil, httperr.ErrBusiness("slot_just_reserved")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorPublic,
		Action:   "slot_reserved",
		Entity:   "reserved_slot",
		EntityID: in.Date + " " + in.Time,
	})

	return &ReserveSlotOutput{
		ReservedSlot: hold,
		ExpiresIn:    int(domain.HoldTTL.Seconds()),
	}, nil
}
