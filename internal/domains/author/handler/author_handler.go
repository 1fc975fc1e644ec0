package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/author/model"
	"bookclub-backend/internal/domains/author/service"
	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// List - GET /authors
func (h *AuthorHandler) List(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.Query())

	authors, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]model.AuthorResponse, len(authors))
	for i, a := range authors {
		results[i] = *a.ToResponse()
	}

	response.List(c, results, total, params.Page, params.PageSize)
}

// GetByID - GET /authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	a, books, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", a.ToDetailResponse(books))
}

// GetBySlug - GET /authors/slug/:slug
func (h *AuthorHandler) GetBySlug(c *gin.Context) {
	a, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	_, books, err := h.service.GetDetail(c.Request.Context(), a.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", a.ToDetailResponse(books))
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionCreate, nil); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.CreateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Author created successfully", a.ToResponse())
}

// Update - PUT /authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
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

	var req model.UpdateAuthorRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Author updated successfully", a.ToResponse())
}

// Delete - DELETE /authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
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

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("Author %q has been deleted successfully", deleted.Name))
}

func (h *AuthorHandler) writeError(c *gin.Context, err error) {
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
