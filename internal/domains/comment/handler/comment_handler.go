package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/comment/model"
	"bookclub-backend/internal/domains/comment/service"
	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type CommentHandler struct {
	service service.Service
}

func NewCommentHandler(svc service.Service) *CommentHandler {
	return &CommentHandler{service: svc}
}

// ListByPost - GET /posts/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	comments, err := h.service.ListByPost(c.Request.Context(), postID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]model.CommentResponse, len(comments))
	for i, cm := range comments {
		results[i] = *cm.ToResponse()
	}

	response.Success(c, http.StatusOK, "Success", results)
}

// Create - POST /posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionCreate, nil); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.CreateCommentRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cm, err := h.service.Create(c.Request.Context(), postID, identity, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created successfully", cm.ToResponse())
}

// Update - PUT /comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionEdit, current); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.UpdateCommentRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cm, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated successfully", cm.ToResponse())
}

// Delete - DELETE /comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionDelete, current); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Comment has been deleted successfully")
}

func (h *CommentHandler) writeError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.FromValidationError(c, err)
	case errors.Is(err, query.ErrInvalidOrdering):
		response.BadRequest(c, err.Error())
	default:
		status := model.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c)
			return
		}
		response.Message(c, status, err.Error())
	}
}
