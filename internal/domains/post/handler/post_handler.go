package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	commentmodel "bookclub-backend/internal/domains/comment/model"
	commentservice "bookclub-backend/internal/domains/comment/service"
	"bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/post/service"
	"bookclub-backend/internal/shared/authz"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type PostHandler struct {
	service  service.Service
	comments commentservice.Service
}

func NewPostHandler(svc service.Service, comments commentservice.Service) *PostHandler {
	return &PostHandler{
		service:  svc,
		comments: comments,
	}
}

// postDetail is the detail payload: the post plus its comment thread.
type postDetail struct {
	model.PostResponse
	Comments     []commentmodel.CommentResponse `json:"comments"`
	CommentCount int                            `json:"comment_count"`
}

// List - GET /posts
func (h *PostHandler) List(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.Query(), "author_id", "tag")

	posts, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]model.PostResponse, len(posts))
	for i, p := range posts {
		results[i] = *p.ToResponse()
	}

	response.List(c, results, total, params.Page, params.PageSize)
}

// GetByID - GET /posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	detail := postDetail{
		PostResponse: *p.ToResponse(),
		Comments:     make([]commentmodel.CommentResponse, len(comments)),
		CommentCount: len(comments),
	}
	for i, cm := range comments {
		detail.Comments[i] = *cm.ToResponse()
	}

	response.Success(c, http.StatusOK, "Success", detail)
}

// Create - POST /posts
func (h *PostHandler) Create(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionCreate, nil); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), identity.ID, identity.Username, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Post created successfully", p.ToResponse())
}

// Update - PUT /posts/:id
func (h *PostHandler) Update(c *gin.Context) {
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

	var req model.UpdatePostRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Post updated successfully", p.ToResponse())
}

// Delete - DELETE /posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
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

	response.Message(c, http.StatusOK, fmt.Sprintf("Post %q has been deleted successfully", deleted.Title))
}

// ListTags - GET /tags
func (h *PostHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if tags == nil {
		tags = []model.Tag{}
	}

	response.Success(c, http.StatusOK, "Success", tags)
}

// CreateTag - POST /tags
func (h *PostHandler) CreateTag(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if decision := authz.Authorize(identity, authz.ActionCreate, nil); !decision.Allowed {
		response.Forbidden(c, decision.Reason)
		return
	}

	var req model.CreateTagRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.service.CreateTag(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Tag created successfully", t)
}

func (h *PostHandler) writeError(c *gin.Context, err error) {
	switch {
	case response.IsValidationError(err):
		response.FromValidationError(c, err)
	case errors.Is(err, query.ErrInvalidOrdering):
		response.BadRequest(c, err.Error())
	case errors.Is(err, commentmodel.ErrPostNotFound):
		response.Message(c, http.StatusNotFound, err.Error())
	default:
		status := model.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			response.InternalServerError(c)
			return
		}
		response.Message(c, status, err.Error())
	}
}
