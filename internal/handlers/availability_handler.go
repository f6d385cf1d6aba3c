package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/httpresp"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	getAvailability *ucBooking.GetAvailability
	log             zerolog.Logger
}

func NewAvailabilityHandler(
	getAvailability *ucBooking.GetAvailability,
	log zerolog.Logger,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
		log:             log,
	}
}

// GET /api/bookings/availability?date=2006-01-02
func (h *AvailabilityHandler) Get(c *gin.Context) {
	out, err := h.getAvailability.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if httperr.IsBusiness(err, "missing_date") {
			httperr.BadRequest(c, "missing_date", "Date parameter required.")
			return
		}
		h.log.Error().Err(err).Msg("availability check failed")
		httperr.Internal(c, "availability_failed", "Failed to check availability.")
		return
	}

	httpresp.OK(c, out)
}
