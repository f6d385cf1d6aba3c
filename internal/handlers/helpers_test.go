package handlers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	"github.com/sharpcut-studio/booking-api/internal/auth"
	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/middleware"
	"github.com/sharpcut-studio/booking-api/internal/models"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

// memRepo mirrors the store contract in memory, including the unique
// reservation constraint.
type memRepo struct {
	mu           sync.Mutex
	bookings     map[string]*models.Booking
	reservations map[string]*models.ReservedSlot
}

func newMemRepo() *memRepo {
	return &memRepo{
		bookings:     make(map[string]*models.Booking),
		reservations: make(map[string]*models.ReservedSlot),
	}
}

func key(date, slot string) string { return date + "|" + slot }

func (m *memRepo) ListConfirmedTimes(_ context.Context, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, b := range m.bookings {
		if strings.HasPrefix(b.Date, date) && b.Status == string(domain.StatusConfirmed) {
			out = append(out, b.Time)
		}
	}
	return out, nil
}

func (m *memRepo) HasConfirmedBooking(_ context.Context, date, slot string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if strings.HasPrefix(b.Date, date) && b.Time == slot && b.Status == string(domain.StatusConfirmed) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) CreateReservation(_ context.Context, rs *models.ReservedSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(rs.Date, rs.Time)
	if _, ok := m.reservations[k]; ok {
		return domain.ErrSlotTaken
	}
	m.reservations[k] = rs
	return nil
}

func (m *memRepo) DeleteReservation(_ context.Context, date, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.reservations, key(date, slot))
	return nil
}

func (m *memRepo) PurgeExpiredReservations(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, rs := range m.reservations {
		if rs.ExpiresAt.Before(now) {
			delete(m.reservations, k)
			n++
		}
	}
	return n, nil
}

func (m *memRepo) PurgeStaleBookings(_ context.Context, olderThan time.Time) (int64, error) {
	return 0, nil
}

func (m *memRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[b.ID] = b
	return nil
}

func (m *memRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (m *memRepo) GetBooking(_ context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memRepo) DeleteBooking(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

var _ domain.Repository = (*memRepo)(nil)

type noopPurger struct{}

func (noopPurger) Run(context.Context) {}

const testAdminToken = "test-admin-token"

// testRouter wires the full public + admin surface over a memRepo,
// mirroring routes.RegisterRoutes.
func testRouter(repo *memRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := zerolog.Nop()
	dispatcher := audit.NewDispatcher(audit.New(nil), log)

	availabilityHandler := NewAvailabilityHandler(
		ucBooking.NewGetAvailability(repo, noopPurger{}), log)
	reservationHandler := NewReservationHandler(
		ucBooking.NewReserveSlot(repo, dispatcher, "UTC"),
		ucBooking.NewReleaseSlot(repo), log)
	bookingHandler := NewBookingHandler(
		ucBooking.NewCreateBooking(repo, dispatcher, false), log)
	adminHandler := NewAdminHandler(
		ucBooking.NewListBookings(repo),
		ucBooking.NewUpdateBookingStatus(repo, dispatcher),
		ucBooking.NewDeleteBooking(repo, dispatcher), log)

	r := gin.New()

	api := r.Group("/api")
	bookings := api.Group("/bookings")
	bookings.GET("/availability", availabilityHandler.Get)
	bookings.POST("/reserve-slot", reservationHandler.Reserve)
	bookings.DELETE("/reserve-slot", reservationHandler.Release)
	bookings.POST("", bookingHandler.Create)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(auth.NewStaticTokenChecker(testAdminToken)))
	admin.GET("/bookings", adminHandler.List)
	admin.PUT("/bookings", adminHandler.Update)
	admin.DELETE("/bookings", adminHandler.Delete)

	return r
}
