package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/request_models"
	"carlink/internal/services"
	"carlink/pkg/utils"
)

type InspectionController struct {
	inspectionService services.InspectionServiceInterface
}

func NewInspectionController(inspectionService services.InspectionServiceInterface) *InspectionController {
	return &InspectionController{
		inspectionService: inspectionService,
	}
}

// RecordInspection godoc
// @Summary Record a pickup or drop-off inspection
// @Description An approved drop-off closes the dispute window for the booking
// @Tags Inspections
// @Accept json
// @Produce json
// @Param request body request_models.RecordInspectionRequest true "Inspection payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inspections [post]
func (i *InspectionController) RecordInspection(c *gin.Context) {
	var req request_models.RecordInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking_id")
		return
	}

	inspection, err := i.inspectionService.RecordInspection(c.Request.Context(), callerCtx,
		bookingID, db_models.InspectionKind(req.Kind), req.Approved, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": inspection.ID.String()}, "Inspection recorded")
}

// ListForBooking godoc
// @Summary List the inspections of a booking
// @Tags Inspections
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /inspections/booking/{bookingId} [get]
func (i *InspectionController) ListForBooking(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	inspections, err := i.inspectionService.ListForBooking(c.Request.Context(), callerCtx, bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, inspections, "")
}
