package booking

import (
	"time"

	"github.com/sharpcut-studio/booking-api/internal/models"
)

// ===============================
// Slot holds
// ===============================

const (
	// HoldTTL is how long a reservation keeps a slot exclusively held
	// while the customer finishes checkout.
	HoldTTL = 10 * time.Minute

	// StaleBookingRetention is how long completed and cancelled
	// bookings are kept before the purge removes them.
	StaleBookingRetention = 30 * 24 * time.Hour
)

func NewHold(date, slot string, now time.Time) *models.ReservedSlot {
	return &models.ReservedSlot{
		Date:      date,
		Time:      slot,
		ExpiresAt: now.Add(HoldTTL),
	}
}

// HoldExpired reports whether a hold is logically free even though the
// row may still exist physically until the next purge.
func HoldExpired(rs *models.ReservedSlot, now time.Time) bool {
	return !rs.ExpiresAt.After(now)
}
