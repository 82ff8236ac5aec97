package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/request_models"
	"carlink/internal/models/response_models"
	"carlink/internal/services"
	"carlink/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Request a booking for a car
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	carID, err := uuid.Parse(req.CarID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid car_id")
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), callerCtx, services.CreateBookingInput{
		CarID:           carID,
		StartDate:       start,
		EndDate:         end,
		WithDriver:      req.WithDriver,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toBookingResponse(booking), "Booking requested")
}

// ChangeStatus godoc
// @Summary Transition a booking's status
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request_models.ChangeBookingStatusRequest true "Target status"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/status [patch]
func (b *BookingController) ChangeStatus(c *gin.Context) {
	var req request_models.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := b.bookingService.ChangeBookingStatus(c.Request.Context(), callerCtx,
		bookingID, db_models.BookingStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toBookingResponse(booking), "Booking status updated")
}

// GetBooking godoc
// @Summary Get one booking
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := b.bookingService.GetBooking(c.Request.Context(), callerCtx, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toBookingResponse(booking), "")
}

// ListMyBookings godoc
// @Summary List the caller's bookings
// @Tags Bookings
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListMyBookings(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	bookings, err := b.bookingService.ListMyBookings(c.Request.Context(), callerCtx, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := make([]response_models.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	utils.RespondSuccess(c, resp, "")
}

// DeleteBooking godoc
// @Summary Delete a booking (admin escape hatch)
// @Tags Bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id} [delete]
func (b *BookingController) DeleteBooking(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := b.bookingService.DeleteBooking(c.Request.Context(), callerCtx, bookingID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking deleted")
}

func toBookingResponse(booking *db_models.Booking) response_models.BookingResponse {
	return response_models.BookingResponse{
		ID:              booking.ID.String(),
		CarID:           booking.CarID.String(),
		GuestID:         booking.GuestID.String(),
		HostID:          booking.HostID.String(),
		StartDate:       booking.StartDate.Format(dateLayout),
		EndDate:         booking.EndDate.Format(dateLayout),
		TotalPriceMinor: booking.TotalPriceMinor,
		Currency:        booking.Currency,
		WithDriver:      booking.WithDriver,
		PickupLocation:  booking.PickupLocation,
		DropoffLocation: booking.DropoffLocation,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}
