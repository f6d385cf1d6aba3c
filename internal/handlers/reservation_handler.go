package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/httpresp"
	"github.com/sharpcut-studio/booking-api/internal/models"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	reserveSlot *ucBooking.ReserveSlot
	releaseSlot *ucBooking.ReleaseSlot
	log         zerolog.Logger
}

func NewReservationHandler(
	reserveSlot *ucBooking.ReserveSlot,
	releaseSlot *ucBooking.ReleaseSlot,
	log zerolog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		reserveSlot: reserveSlot,
		releaseSlot: releaseSlot,
		log:         log,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type ReserveSlotRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm
}

type ReserveSlotResponse struct {
	Success      bool                 `json:"success"`
	ReservedSlot *models.ReservedSlot `json:"reservedSlot"`
	ExpiresIn    int                  `json:"expiresIn"`
}

// ======================================================
// RESERVE
// ======================================================

// POST /api/bookings/reserve-slot
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req ReserveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_date_or_time", "Date and time required.")
		return
	}

	out, err := h.reserveSlot.Execute(c.Request.Context(), ucBooking.ReserveSlotInput{
		Date: req.Date,
		Time: req.Time,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_already_booked"):
			httperr.Conflict(c, "slot_already_booked", "Slot already booked.")
		case httperr.IsBusiness(err, "slot_just_reserved"):
			httperr.Conflict(c, "slot_just_reserved", "Slot just got reserved.")
		default:
			h.log.Error().Err(err).Msg("reserve slot failed")
			httperr.Internal(c, "reserve_failed", "Failed to reserve slot.")
		}
		return
	}

	c.JSON(http.StatusOK, ReserveSlotResponse{
		Success:      true,
		ReservedSlot: out.ReservedSlot,
		ExpiresIn:    out.ExpiresIn,
	})
}

// ======================================================
// RELEASE
// ======================================================

// DELETE /api/bookings/reserve-slot?date=...&time=...
func (h *ReservationHandler) Release(c *gin.Context) {
	date := c.Query("date")
	slot := c.Query("time")

	if date == "" || slot == "" {
		httperr.BadRequest(c, "missing_date_or_time", "Date and time required.")
		return
	}

	if err := h.releaseSlot.Execute(c.Request.Context(), ucBooking.ReleaseSlotInput{
		Date: date,
		Time: slot,
	}); err != nil {
		h.log.Error().Err(err).Msg("release slot failed")
		httperr.Internal(c, "release_failed", "Failed to delete reservation.")
		return
	}

	httpresp.Acked(c)
}
