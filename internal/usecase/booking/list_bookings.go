package booking

import (
	"context"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking, most recent first.
func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	return uc.repo.ListBookings(ctx)
}
