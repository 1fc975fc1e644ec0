package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/book/model"
	"bookclub-backend/internal/domains/book/service"
	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /books
func (h *BookHandler) List(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.Query(), "author_id", "publication_year", "title")

	books, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]model.BookResponse, len(books))
	for i, b := range books {
		results[i] = *b.ToResponse()
	}

	response.List(c, results, total, params.Page, params.PageSize)
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", b.ToDetailResponse())
}

// Create - POST /books
func (h *BookHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionCreate, nil); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.CreateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", b.ToResponse())
}

// Update - PUT /books/:id
func (h *BookHandler) Update(c *gin.Context) {
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

	var req model.UpdateBookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", b.ToResponse())
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
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

	response.Message(c, http.StatusOK, fmt.Sprintf("Book %q has been deleted successfully", deleted.Title))
}

func (h *BookHandler) writeError(c *gin.Context, err error) {
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
