package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/middleware"
	"bokasafn/internal/transport/http/response"
)

type UserHandler struct {
	users *app.UserService
	reads *app.ReadService
}

type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func NewUserHandler(users *app.UserService, reads *app.ReadService) *UserHandler {
	return &UserHandler{users: users, reads: reads}
}

func (h *UserHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	users, err := h.users.List(limit, offset)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Result(c, users)
}

func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.CurrentUser(c)})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.users.UpdateProfile(middleware.CurrentUser(c).ID, req.Name, req.Password)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Result(c, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "No user found by that id")
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		response.InternalError(c)
		return
	}
	if user == nil {
		response.Error(c, http.StatusNotFound, "No user found by that id")
		return
	}
	response.Result(c, user)
}

// ReadsOf lists another user's reading history, paginated.
func (h *UserHandler) ReadsOf(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		response.Error(c, http.StatusNotFound, "No user found by that id")
		return
	}
	limit, offset := pageParams(c)

	records, err := h.reads.ListForUser(id, limit, offset)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Result(c, records)
}

func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
