package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/response"
)

type CategoryHandler struct {
	categories *app.CategoryService
}

type CategoryRequest struct {
	Name string `json:"name"`
}

func NewCategoryHandler(categories *app.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create is idempotent by name: posting an existing category returns the
// existing rows without inserting.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	categories, err := h.categories.Create(req.Name)
	if err != nil {
		if errors.Is(err, app.ErrEmptyCategoryName) {
			response.Error(c, http.StatusBadRequest, "Category must not be empty string")
			return
		}
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, categories)
}
