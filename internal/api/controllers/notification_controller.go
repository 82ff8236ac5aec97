package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"carlink/internal/services"
	"carlink/pkg/utils"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first
// @Tags Notifications
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications [get]
func (n *NotificationController) ListNotifications(c *gin.Context) {
	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	notifications, err := n.notificationService.ListForUser(c.Request.Context(), callerCtx.UserID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, notifications, "")
}

// MarkRead godoc
// @Summary Mark one of the caller's notifications as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (n *NotificationController) MarkRead(c *gin.Context) {
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid notification id")
		return
	}

	callerCtx, ok := caller(c)
	if !ok {
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), callerCtx.UserID, notificationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Notification marked read")
}
