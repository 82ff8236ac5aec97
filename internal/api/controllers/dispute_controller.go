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

type DisputeController struct {
	disputeService services.DisputeServiceInterface
}

func NewDisputeController(disputeService services.DisputeServiceInterface) *DisputeController {
	return &DisputeController{
		disputeService: disputeService,
	}
}

// CreateDispute godoc
// @Summary Raise a dispute against a booking
// @Description Opens a dispute and puts the linked payment on hold
// @Tags Disputes
// @Accept json
// @Produce json
// @Param request body request_models.CreateDisputeRequest true "Dispute payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes [post]
func (d *DisputeController) CreateDispute(c *gin.Context) {
	var req request_models.CreateDisputeRequest
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

	var paymentID *uuid.UUID
	if req.PaymentID != "" {
		id, err := uuid.Parse(req.PaymentID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid payment_id")
			return
		}
		paymentID = &id
	}

	dispute, err := d.disputeService.CreateDispute(c.Request.Context(), callerCtx, bookingID, req.Reason, paymentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDisputeResponse(dispute), "Dispute opened")
}

// MarkUnderReview godoc
// @Summary Move a dispute to under review
// @Tags Disputes
// @Produce json
// @Param id path string true "Dispute ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes/{id}/review [post]
func (d *DisputeController) MarkUnderReview(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid dispute id")
		return
	}

	dispute, err := d.disputeService.MarkUnderReview(c.Request.Context(), callerCtx, disputeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDisputeResponse(dispute), "Dispute under review")
}

// ResolveDispute godoc
// @Summary Resolve a dispute, refunding the guest or releasing to the host
// @Tags Disputes
// @Accept json
// @Produce json
// @Param id path string true "Dispute ID"
// @Param request body request_models.ResolveDisputeRequest true "Resolution payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes/{id}/resolve [post]
func (d *DisputeController) ResolveDispute(c *gin.Context) {
	var req request_models.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid dispute id")
		return
	}

	dispute, err := d.disputeService.ResolveDispute(c.Request.Context(), callerCtx, disputeID, req.RefundAmountMinor, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDisputeResponse(dispute), "Dispute resolved")
}

// RejectDispute godoc
// @Summary Reject a dispute and release any held payment
// @Tags Disputes
// @Produce json
// @Param id path string true "Dispute ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes/{id}/reject [post]
func (d *DisputeController) RejectDispute(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid dispute id")
		return
	}

	dispute, err := d.disputeService.RejectDispute(c.Request.Context(), callerCtx, disputeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toDisputeResponse(dispute), "Dispute rejected")
}

// ListDisputes godoc
// @Summary List disputes by status (admin)
// @Tags Disputes
// @Produce json
// @Param status query string true "Dispute status"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes [get]
func (d *DisputeController) ListDisputes(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	status := db_models.DisputeStatus(c.DefaultQuery("status", string(db_models.DisputeStatusOpen)))

	disputes, err := d.disputeService.ListByStatus(c.Request.Context(), callerCtx, status, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := make([]response_models.DisputeResponse, 0, len(disputes))
	for i := range disputes {
		resp = append(resp, toDisputeResponse(&disputes[i]))
	}
	utils.RespondSuccess(c, resp, "")
}

// GetDispute godoc
// @Summary Get a dispute (admin)
// @Tags Disputes
// @Produce json
// @Param id path string true "Dispute ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /disputes/{id} [get]
func (d *DisputeController) GetDispute(c *gin.Context) {
	disputeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid dispute id")
		return
	}

	dispute, err := d.disputeService.GetDispute(c.Request.Context(), disputeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, toDisputeResponse(dispute), "")
}

func toDisputeResponse(dispute *db_models.Dispute) response_models.DisputeResponse {
	resp := response_models.DisputeResponse{
		ID:        dispute.ID.String(),
		BookingID: dispute.BookingID.String(),
		UserID:    dispute.UserID.String(),
		Reason:    dispute.Reason,
		Status:    string(dispute.Status),
		CreatedAt: dispute.CreatedAt,
		UpdatedAt: dispute.UpdatedAt,
	}
	if dispute.PaymentID != nil {
		id := dispute.PaymentID.String()
		resp.PaymentID = &id
	}
	return resp
}
