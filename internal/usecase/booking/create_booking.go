package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/models"
	"github.com/sharpcut-studio/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Service string
	Barber  string
	Date    string
	Time    string

	Name  string
	Email string
	Phone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// verifyEmailDomain adds an MX/A lookup on the email domain;
	// disabled in tests and air-gapped deployments.
	verifyEmailDomain bool
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	verifyEmailDomain bool,
) *CreateBooking {
	return &CreateBooking{
		repo:              repo,
		audit:             audit,
		verifyEmailDomain: verifyEmailDomain,
	}
}

// Execute persists a new booking in status pending. Confirmation is an
// admin (or payment-side) concern; a pending booking does not block the
// slot and the checkout hold stays in place until released or expired.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if in.Email != "" {
		if !validators.IsEmailFormatValid(in.Email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}
		if uc.verifyEmailDomain && !validators.IsEmailDomainValid(in.Email) {
			return nil, httperr.ErrBusiness("invalid_email_domain")
		}
	}

	b := &models.Booking{
		ID:      uuid.NewString(),
		Service: in.Service,
		Barber:  in.Barber,
		Date:    in.Date,
		Time:    in.Time,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Status:  string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    audit.ActorPublic,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
