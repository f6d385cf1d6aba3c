package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/models"
)

// fakeRepo is an in-memory Repository. The reservations map enforces
// the same uniqueness on (date, time) the real store's index does, under
// a mutex, so the concurrency tests exercise a real race.
type fakeRepo struct {
	mu           sync.Mutex
	bookings     map[string]*models.Booking
	reservations map[string]*models.ReservedSlot

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings:     make(map[string]*models.Booking),
		reservations: make(map[string]*models.ReservedSlot),
	}
}

func slotKey(date, slot string) string {
	return date + "|" + slot
}

func (f *fakeRepo) ListConfirmedTimes(_ context.Context, date string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, b := range f.bookings {
		if strings.HasPrefix(b.Date, date) && b.Status == string(domain.StatusConfirmed) {
			times = append(times, b.Time)
		}
	}
	return times, nil
}

func (f *fakeRepo) HasConfirmedBooking(_ context.Context, date, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, b := range f.bookings {
		if strings.HasPrefix(b.Date, date) && b.Time == slot && b.Status == string(domain.StatusConfirmed) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, rs *models.ReservedSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(rs.Date, rs.Time)
	if _, exists := f.reservations[key]; exists {
		return domain.ErrSlotTaken
	}

	f.nextID++
	rs.ID = f.nextID
	f.reservations[key] = rs
	return nil
}

func (f *fakeRepo) DeleteReservation(_ context.Context, date, slot string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.reservations, slotKey(date, slot))
	return nil
}

func (f *fakeRepo) PurgeExpiredReservations(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for key, rs := range f.reservations {
		if rs.ExpiresAt.Before(now) {
			delete(f.reservations, key)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) PurgeStaleBookings(_ context.Context, olderThan time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for id, b := range f.bookings {
		stale := b.Status == string(domain.StatusCompleted) || b.Status == string(domain.StatusCancelled)
		if stale && b.CreatedAt.Before(olderThan) {
			delete(f.bookings, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) hasReservation(date, slot string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.reservations[slotKey(date, slot)]
	return ok
}

var _ domain.Repository = (*fakeRepo)(nil)
