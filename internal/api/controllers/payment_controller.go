package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/models/db_models"
	"carlink/internal/models/request_models"
	"carlink/internal/models/response_models"
	"carlink/internal/repositories"
	"carlink/internal/services"
	"carlink/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreatePayment godoc
// @Summary Create the payment record for a booking
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentRequest true "Payment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [post]
func (p *PaymentController) CreatePayment(c *gin.Context) {
	var req request_models.CreatePaymentRequest
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

	payment, err := p.paymentService.CreatePayment(c.Request.Context(), callerCtx, services.CreatePaymentInput{
		BookingID:   bookingID,
		AmountMinor: req.AmountMinor,
		Currency:    req.Currency,
		Method:      req.Method,
		Type:        req.Type,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toPaymentResponse(payment), "Payment created")
}

// CompletePayment godoc
// @Summary Capture a booking's payment
// @Tags Payments
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/booking/{bookingId}/complete [post]
func (p *PaymentController) CompletePayment(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	payment, txn, err := p.paymentService.CompletePayment(c.Request.Context(), bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.CompletePaymentResponse{
		Payment:     toPaymentResponse(payment),
		Transaction: toTransactionResponse(txn),
	}
	utils.RespondSuccess(c, resp, "Payment completed")
}

// ReleaseToHost godoc
// @Summary Settle a payment to the host, minus platform fee
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.ReleaseToHostRequest true "Release payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/release [post]
func (p *PaymentController) ReleaseToHost(c *gin.Context) {
	var req request_models.ReleaseToHostRequest
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
	hostID, err := uuid.Parse(req.HostID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid host_id")
		return
	}

	if err := p.paymentService.ReleaseToHost(c.Request.Context(), callerCtx, bookingID, hostID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment released to host")
}

// Refund godoc
// @Summary Refund a booking's payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.RefundPaymentRequest true "Refund payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/refund [post]
func (p *PaymentController) Refund(c *gin.Context) {
	var req request_models.RefundPaymentRequest
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

	err = p.paymentService.Refund(c.Request.Context(), callerCtx, bookingID, req.RefundAmountMinor, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment refunded")
}

// ListPayments godoc
// @Summary List payments visible to the caller
// @Tags Payments
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Payment status filter"
// @Param booking_id query string false "Booking filter"
// @Param payer_id query string false "Payer filter"
// @Param recipient_id query string false "Recipient filter (ignored for host callers)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments [get]
func (p *PaymentController) ListPayments(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	filter := repositories.PaymentListFilter{Page: page, PageSize: pageSize}
	if raw := c.Query("status"); raw != "" {
		status := db_models.PaymentStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("booking_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid booking_id")
			return
		}
		filter.BookingID = &id
	}
	if raw := c.Query("payer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid payer_id")
			return
		}
		filter.PayerID = &id
	}
	if raw := c.Query("recipient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid recipient_id")
			return
		}
		filter.RecipientID = &id
	}

	payments, err := p.paymentService.ListPayments(c.Request.Context(), callerCtx, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := make([]response_models.PaymentResponse, 0, len(payments))
	for i := range payments {
		resp = append(resp, toPaymentResponse(&payments[i]))
	}
	utils.RespondSuccess(c, resp, "")
}

// GetPayment godoc
// @Summary Get a payment by id
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{id} [get]
func (p *PaymentController) GetPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := p.paymentService.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, toPaymentResponse(payment), "")
}

// GetPaymentByBooking godoc
// @Summary Get the payment attached to a booking
// @Tags Payments
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/booking/{bookingId} [get]
func (p *PaymentController) GetPaymentByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	payment, err := p.paymentService.GetPaymentByBooking(c.Request.Context(), bookingID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, toPaymentResponse(payment), "")
}

// ListTransactions godoc
// @Summary List the immutable ledger rows of a payment
// @Tags Payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/{id}/transactions [get]
func (p *PaymentController) ListTransactions(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid payment id")
		return
	}

	txns, err := p.paymentService.ListTransactions(c.Request.Context(), paymentID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := make([]response_models.PaymentTransactionResponse, 0, len(txns))
	for i := range txns {
		resp = append(resp, toTransactionResponse(&txns[i]))
	}
	utils.RespondSuccess(c, resp, "")
}

func toPaymentResponse(payment *db_models.Payment) response_models.PaymentResponse {
	return response_models.PaymentResponse{
		ID:                payment.ID.String(),
		BookingID:         payment.BookingID.String(),
		PayerID:           payment.PayerID.String(),
		RecipientID:       payment.RecipientID.String(),
		AmountMinor:       payment.AmountMinor,
		Currency:          payment.Currency,
		Method:            payment.Method,
		Type:              payment.Type,
		Status:            string(payment.Status),
		HostEarningsMinor: payment.HostEarningsMinor,
		TransactionID:     payment.TransactionID,
	}
}

func toTransactionResponse(txn *db_models.PaymentTransaction) response_models.PaymentTransactionResponse {
	return response_models.PaymentTransactionResponse{
		ID:          txn.ID.String(),
		PaymentID:   txn.PaymentID.String(),
		Type:        string(txn.Type),
		AmountMinor: txn.AmountMinor,
		Status:      txn.Status,
		CreatedAt:   txn.CreatedAt,
	}
}
