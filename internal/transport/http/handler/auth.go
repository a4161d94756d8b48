package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/response"
)

type AuthHandler struct {
	auth *app.AuthService
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(auth *app.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, fieldErrs, err := h.auth.Register(app.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		response.InternalError(c)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"errors": fieldErrs})
		return
	}

	response.Result(c, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"username": "Username can not be the empty string"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"password": "Password can not be the empty string"})
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoSuchUser):
			response.Error(c, http.StatusUnauthorized, "No such user")
		case errors.Is(err, app.ErrInvalidPassword):
			response.Error(c, http.StatusUnauthorized, "Invalid password")
		default:
			response.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
