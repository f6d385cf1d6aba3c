package models

import "time"

// ReservedSlot is a short-lived exclusive hold on a (date, time) slot
// taken while a customer completes checkout. The composite unique index
// is the only concurrency primitive in the system: concurrent inserts
// for the same slot race on it and exactly one wins.
type ReservedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:30;not null;uniqueIndex:idx_reserved_slot" json:"date"`
	Time string `gorm:"size:10;not null;uniqueIndex:idx_reserved_slot" json:"time"`

	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
