package utils

import "errors"

// Not found
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrCarNotFound          = errors.New("car not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Conflict
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrBookingOverlap     = errors.New("car already booked for the requested dates")
	ErrPaymentExists      = errors.New("payment already exists for booking")
	ErrDisputeExists      = errors.New("dispute already exists for booking")
)

// Permission
var (
	ErrPermissionDenied   = errors.New("caller not allowed to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Invalid state
var (
	ErrBookingFinalized     = errors.New("booking is in a terminal status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrDropoffApproved      = errors.New("cannot dispute an approved drop-off")
	ErrPaymentRefunded      = errors.New("payment already refunded")
	ErrDisputeClosed        = errors.New("dispute already closed")
)

// Validation
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidPage      = errors.New("invalid page parameter")
	ErrInvalidPageSize  = errors.New("invalid page size parameter")
)

var ErrDatabaseError = errors.New("database error")
