package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// SlotConflict is the 409 payload for reservation races. Available is
// always false; the code tells the client whether to refresh the whole
// availability view (slot_already_booked) or just pick again
// (slot_just_reserved).
type SlotConflict struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	Available bool   `json:"available"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	c.JSON(http.StatusConflict, SlotConflict{
		Code:      code,
		Message:   message,
		Available: false,
	})
}
