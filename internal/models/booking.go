package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Service string `gorm:"size:100;not null" json:"service"`
	Barber  string `gorm:"size:100;not null" json:"barber"`

	// Date is a calendar-date string ("2006-01-02"); Time is the slot
	// label ("15:04"). They are matched as strings, never parsed.
	Date string `gorm:"size:30;index;not null" json:"date"`
	Time string `gorm:"size:10;not null" json:"time"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
