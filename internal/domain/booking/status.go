package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Transitions between valid statuses are deliberately unrestricted: the
// admin dashboard is the only writer and may move a booking backwards
// (e.g. confirmed -> pending after a payment reversal). Only membership
// in the set above is enforced.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}
