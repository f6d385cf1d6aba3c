package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sharpcut-studio/booking-api/internal/httperr"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

type BookingHandler struct {
	createBooking *ucBooking.CreateBooking
	log           zerolog.Logger
}

func NewBookingHandler(
	createBooking *ucBooking.CreateBooking,
	log zerolog.Logger,
) *BookingHandler {
	return &BookingHandler{
		createBooking: createBooking,
		log:           log,
	}
}

type CreateBookingRequest struct {
	Service string `json:"service" binding:"required"`
	Barber  string `json:"barber" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:mm
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or invalid booking fields.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Service: req.Service,
		Barber:  req.Barber,
		Date:    req.Date,
		Time:    req.Time,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_email"):
			httperr.BadRequest(c, "invalid_email", "Email address is not valid.")
		case httperr.IsBusiness(err, "invalid_email_domain"):
			httperr.BadRequest(c, "invalid_email_domain", "Email domain does not accept mail.")
		default:
			h.log.Error().Err(err).Msg("create booking failed")
			httperr.Internal(c, "booking_failed", "Failed to create booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}
