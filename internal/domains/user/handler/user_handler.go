package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookclub-backend/internal/domains/user/model"
	"bookclub-backend/internal/domains/user/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", resp)
}

// Login - POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", resp)
}

// Refresh - POST /auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req model.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FromValidationError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", resp)
}

// GetProfile - GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	u, err := h.service.GetByID(c.Request.Context(), identity.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", u.ToResponse())
}

// UpdateProfile - PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req model.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), identity.ID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", u.ToResponse())
}

// List - GET /users
func (h *UserHandler) List(c *gin.Context) {
	params := query.ParseParams(c.Request.URL.Query(), "role")

	users, total, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]model.UserResponse, len(users))
	for i, u := range users {
		results[i] = *u.ToResponse()
	}

	response.List(c, results, total, params.Page, params.PageSize)
}

// GetByID - GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Success", u.ToResponse())
}

// UpdateRole - PUT /admin/users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	var req model.UpdateRoleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.FromValidationError(c, err)
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), id, req.Role); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Role updated successfully")
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
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
