package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/models/request_models"
	"carlink/internal/services"
	"carlink/pkg/utils"
)

type MessageController struct {
	messageService services.MessageServiceInterface
}

func NewMessageController(messageService services.MessageServiceInterface) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// SendMessage godoc
// @Summary Send a message to another user
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body request_models.SendMessageRequest true "Message payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages [post]
func (m *MessageController) SendMessage(c *gin.Context) {
	var req request_models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid recipient_id")
		return
	}

	var bookingID *uuid.UUID
	if req.BookingID != "" {
		id, err := uuid.Parse(req.BookingID)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "invalid booking_id")
			return
		}
		bookingID = &id
	}

	message, err := m.messageService.SendMessage(c.Request.Context(), callerCtx, recipientID, bookingID, req.Body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": message.ID.String()}, "Message sent")
}

// ListConversation godoc
// @Summary List messages exchanged with another user
// @Tags Messages
// @Produce json
// @Param userId path string true "Other user ID"
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messages/{userId} [get]
func (m *MessageController) ListConversation(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	otherID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	page, pageSize := pagination(c)
	messages, err := m.messageService.ListConversation(c.Request.Context(), callerCtx, otherID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "")
}
