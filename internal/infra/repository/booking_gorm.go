package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListConfirmedTimes(
	ctx context.Context,
	date string,
) ([]string, error) {

	// Dates are stored as strings (sometimes full ISO timestamps from
	// older clients), so the match is a prefix on the calendar date.
	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Distinct("time").
		Where("date LIKE ? AND status = ?", date+"%", string(domain.StatusConfirmed)).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) HasConfirmedBooking(
	ctx context.Context,
	date string,
	slot string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"date LIKE ? AND time = ? AND status = ?",
			date+"%", slot, string(domain.StatusConfirmed),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	rs *models.ReservedSlot,
) error {

	err := r.db.WithContext(ctx).Create(rs).Error
	if err == nil {
		return nil
	}

	if isUniqueViolation(err) {
		return domain.ErrSlotTaken
	}

	return err
}

func (r *BookingGormRepository) DeleteReservation(
	ctx context.Context,
	date string,
	slot string,
) error {

	// Deleting zero rows is not an error; release is idempotent.
	return r.db.WithContext(ctx).
		Where("date = ? AND time = ?", date, slot).
		Delete(&models.ReservedSlot{}).Error
}

// --------------------------------------------------
// Cleanup
// --------------------------------------------------

func (r *BookingGormRepository) PurgeExpiredReservations(
	ctx context.Context,
	now time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.ReservedSlot{})

	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) PurgeStaleBookings(
	ctx context.Context,
	olderThan time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where(
			"status IN ? AND created_at < ?",
			[]string{string(domain.StatusCompleted), string(domain.StatusCancelled)},
			olderThan,
		).
		Delete(&models.Booking{})

	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
