package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/middleware"
	"bokasafn/internal/transport/http/response"
)

type ReadHandler struct {
	reads *app.ReadService
}

type ReadRequest struct {
	BookID     uint   `json:"bookid"`
	UserRating int    `json:"userrating"`
	UserReview string `json:"userreview"`
}

func NewReadHandler(reads *app.ReadService) *ReadHandler {
	return &ReadHandler{reads: reads}
}

func (h *ReadHandler) Create(c *gin.Context) {
	var req ReadRequest
	if !bindJSON(c, &req) {
		return
	}

	record, fieldErrs, err := h.reads.Add(middleware.CurrentUser(c).ID, app.ReadInput{
		BookID:     req.BookID,
		UserRating: req.UserRating,
		UserReview: req.UserReview,
	})
	if err != nil {
		if errors.Is(err, app.ErrReadBookMissing) {
			response.Error(c, http.StatusBadRequest, "Book id not found")
			return
		}
		response.InternalError(c)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}

	response.Result(c, record)
}

func (h *ReadHandler) List(c *gin.Context) {
	limit, offset := pageParams(c)

	records, err := h.reads.ListForUser(middleware.CurrentUser(c).ID, limit, offset)
	if err != nil {
		response.InternalError(c)
		return
	}
	if len(records) == 0 {
		response.Result(c, "No books read")
		return
	}
	response.Result(c, records)
}

func (h *ReadHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failure deleting data")
		return
	}

	deleted, err := h.reads.Delete(uint(id), middleware.CurrentUser(c).ID)
	if err != nil || !deleted {
		response.Error(c, http.StatusBadRequest, "Failure deleting data")
		return
	}
	response.Result(c, "Book-reading successfully deleted")
}
