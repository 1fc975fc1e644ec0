package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	postmodel "bookclub-backend/internal/domains/post/model"
	"bookclub-backend/internal/domains/social/model"
	"bookclub-backend/internal/domains/social/service"
	"bookclub-backend/internal/shared/middleware"
	"bookclub-backend/internal/shared/query"
	"bookclub-backend/internal/shared/response"
)

type SocialHandler struct {
	service service.Service
}

func NewSocialHandler(svc service.Service) *SocialHandler {
	return &SocialHandler{service: svc}
}

// Follow - POST /users/:id/follow
func (h *SocialHandler) Follow(c *gin.Context) {
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)

	followee, err := h.service.Follow(c.Request.Context(), identity.ID, followeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("You are now following %s", followee.Username))
}

// Unfollow - DELETE /users/:id/unfollow
func (h *SocialHandler) Unfollow(c *gin.Context) {
	followeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)

	followee, err := h.service.Unfollow(c.Request.Context(), identity.ID, followeeID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, fmt.Sprintf("You have unfollowed %s", followee.Username))
}

// Followers - GET /users/:id/followers
func (h *SocialHandler) Followers(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	followers, err := h.service.Followers(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if followers == nil {
		followers = []model.UserSummary{}
	}

	response.Success(c, http.StatusOK, "Success", followers)
}

// Following - GET /users/:id/following
func (h *SocialHandler) Following(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	following, err := h.service.Following(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if following == nil {
		following = []model.UserSummary{}
	}

	response.Success(c, http.StatusOK, "Success", following)
}

// Feed - GET /feed
func (h *SocialHandler) Feed(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	params := query.ParseParams(c.Request.URL.Query())

	posts, total, err := h.service.Feed(c.Request.Context(), identity.ID, params)
	if err != nil {
		h.writeError(c, err)
		return
	}

	results := make([]postmodel.PostResponse, len(posts))
	for i, p := range posts {
		results[i] = *p.ToResponse()
	}

	response.List(c, results, total, params.Page, params.PageSize)
}

// Like - POST /posts/:id/like
func (h *SocialHandler) Like(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.service.Like(c.Request.Context(), identity.ID, postID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, "Post liked successfully")
}

// Unlike - DELETE /posts/:id/unlike
func (h *SocialHandler) Unlike(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid UUID format")
		return
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.service.Unlike(c.Request.Context(), identity.ID, postID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Post unliked successfully")
}

func (h *SocialHandler) writeError(c *gin.Context, err error) {
	switch {
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
