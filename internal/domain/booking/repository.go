package booking

import (
	"context"
	"time"

	"github.com/sharpcut-studio/booking-api/internal/models"
)

type Repository interface {
	// -------- Availability --------
	ListConfirmedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	HasConfirmedBooking(
		ctx context.Context,
		date string,
		slot string,
	) (bool, error)

	// -------- Reservation --------

	// CreateReservation must be an atomic insert-if-absent: it returns
	// ErrSlotTaken when a reservation for (date, slot) already exists,
	// relying on the store's unique constraint rather than a prior read.
	CreateReservation(
		ctx context.Context,
		rs *models.ReservedSlot,
	) error

	DeleteReservation(
		ctx context.Context,
		date string,
		slot string,
	) error

	// -------- Cleanup --------
	PurgeExpiredReservations(
		ctx context.Context,
		now time.Time,
	) (int64, error)

	PurgeStaleBookings(
		ctx context.Context,
		olderThan time.Time,
	) (int64, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id string,
	) error
}
