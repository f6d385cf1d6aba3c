package booking

import "errors"

var (
	// ErrSlotTaken is returned by CreateReservation when the store's
	// unique constraint on (date, time) rejects the insert.
	ErrSlotTaken = errors.New("slot already reserved")

	// ErrNotFound is returned when a booking id does not exist.
	ErrNotFound = errors.New("booking not found")
)
