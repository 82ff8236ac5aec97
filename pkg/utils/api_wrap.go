package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service sentinel errors into the wire envelope.
// Services never assume HTTP codes; the mapping lives here only.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrCarNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrDisputeNotFound),
		errors.Is(err, ErrNotificationNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrBookingOverlap),
		errors.Is(err, ErrPaymentExists),
		errors.Is(err, ErrDisputeExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrPermissionDenied):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrBookingFinalized),
		errors.Is(err, ErrTransitionNotAllowed),
		errors.Is(err, ErrDropoffApproved),
		errors.Is(err, ErrPaymentRefunded),
		errors.Is(err, ErrDisputeClosed):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())

	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
