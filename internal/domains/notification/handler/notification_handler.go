package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/notification/model"
	"bookclub-backend/internal/domains/notification/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type NotificationHandler struct {
	service service.Service
}

func NewNotificationHandler(svc service.Service) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List - GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	params := query.ParseParams(c.Request.URL.Query())

	notifications, total, unread, err := h.service.List(c.Request.Context(), identity.ID, params.Page, params.PageSize)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}

	response.ListWithExtra(c, notifications, total, params.Page, params.PageSize, gin.H{
		"unread_count": unread,
	})
}

// MarkRead - PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)

	n, err := h.service.MarkRead(c.Request.Context(), identity.ID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked as read", n)
}

// MarkAllRead - PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	updated, err := h.service.MarkAllRead(c.Request.Context(), identity.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("%d notifications marked as read", updated))
}

func (h *NotificationHandler) writeError(c *gin.Context, err error) {
	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		response.InternalServerError(c)
		return
	}
	response.Message(c, status, err.Error())
}
