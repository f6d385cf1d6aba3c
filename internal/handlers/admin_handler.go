package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	domain "github.com/sharpcut-studio/booking-api/internal/domain/booking"
	"github.com/sharpcut-studio/booking-api/internal/httperr"
	"github.com/sharpcut-studio/booking-api/internal/httpresp"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listBookings *ucBooking.ListBookings
	updateStatus *ucBooking.UpdateBookingStatus
	deleteUC     *ucBooking.DeleteBooking
	log          zerolog.Logger
}

func NewAdminHandler(
	listBookings *ucBooking.ListBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
	deleteUC *ucBooking.DeleteBooking,
	log zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		listBookings: listBookings,
		updateStatus: updateStatus,
		deleteUC:     deleteUC,
		log:          log,
	}
}

// ======================================================
// LIST
// ======================================================

// GET /api/admin/bookings
func (h *AdminHandler) List(c *gin.Context) {
	bookings, err := h.listBookings.Execute(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list bookings failed")
		httperr.Internal(c, "list_failed", "Failed to fetch bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// UPDATE STATUS
// ======================================================

type UpdateBookingRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// PUT /api/admin/bookings
func (h *AdminHandler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_id_or_status", "Missing id or status.")
		return
	}

	b, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateBookingStatusInput{
		ID:     req.ID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be pending, confirmed, cancelled or completed.")
		case errors.Is(err, domain.ErrNotFound):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		default:
			h.log.Error().Err(err).Msg("update booking failed")
			httperr.Internal(c, "update_failed", "Failed to update booking.")
		}
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

// DELETE /api/admin/bookings?id=...
func (h *AdminHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "missing_id", "Missing booking id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		h.log.Error().Err(err).Msg("delete booking failed")
		httperr.Internal(c, "delete_failed", "Failed to delete booking.")
		return
	}

	httpresp.Acked(c)
}
