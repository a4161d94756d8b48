package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/app"
	"bokasafn/internal/model"
	"bokasafn/internal/transport/http/response"
)

type BookHandler struct {
	books *app.BookService
}

type BookRequest struct {
	Title       string `json:"title"`
	ISBN13      string `json:"isbn13"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func NewBookHandler(books *app.BookService) *BookHandler {
	return &BookHandler{books: books}
}

func (h *BookHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	var (
		items []model.Book
		err   error
	)
	if query := c.Query("search"); query != "" {
		items, err = h.books.Search(query, limit, offset)
	} else {
		items, err = h.books.List(limit, offset)
	}
	if err != nil {
		response.InternalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

func (h *BookHandler) Create(c *gin.Context) {
	var req BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, validationErrs, err := h.books.Create(bookInput(req))
	if err != nil {
		writeBookStoreError(c, err)
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrs})
		return
	}

	c.JSON(http.StatusOK, []model.Book{*book})
}

// Get returns 400 for an unknown id. Not 404: clients depend on it.
func (h *BookHandler) Get(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("Book with id %s does not exist", idParam))
		return
	}

	book, err := h.books.Get(uint(id))
	if err != nil {
		if errors.Is(err, app.ErrBookNotFound) {
			response.Error(c, http.StatusBadRequest, fmt.Sprintf("Book with id %d does not exist", id))
			return
		}
		response.InternalError(c)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *BookHandler) Update(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, fmt.Sprintf("Book with id %s does not exist", idParam))
		return
	}

	var req BookRequest
	if !bindJSON(c, &req) {
		return
	}

	book, validationErrs, err := h.books.Update(uint(id), bookInput(req))
	if err != nil {
		writeBookStoreError(c, err)
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErrs})
		return
	}

	c.JSON(http.StatusOK, book)
}

func bookInput(req BookRequest) app.BookInput {
	return app.BookInput{
		Title:       req.Title,
		ISBN13:      req.ISBN13,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
	}
}

func writeBookStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrDuplicateTitle):
		response.Error(c, http.StatusBadRequest, "Make sure title does not already exist")
	case errors.Is(err, app.ErrDuplicateISBN):
		response.Error(c, http.StatusBadRequest, "Make sure isbn13 does not already exist")
	default:
		response.Error(c, http.StatusBadRequest, "Unexpected error")
	}
}
