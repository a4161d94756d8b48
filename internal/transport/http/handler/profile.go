package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/middleware"
	"bokasafn/internal/transport/http/response"
)

type ProfileHandler struct {
	images *app.ImageService
}

func NewProfileHandler(images *app.ImageService) *ProfileHandler {
	return &ProfileHandler{images: images}
}

// Upload spools the multipart "profile" field to a temp file, hands it to
// the image service and reports the hosted URL. The service removes the
// temp file whether or not the upload succeeds.
func (h *ProfileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("profile")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failure uploading image")
		return
	}

	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		response.Error(c, http.StatusBadRequest, "Failure uploading image")
		return
	}

	url, err := h.images.SetProfileImage(
		c.Request.Context(),
		middleware.CurrentUser(c).ID,
		tempPath,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		if errors.Is(err, app.ErrImageSaveFailed) {
			response.Error(c, http.StatusBadRequest, "Failure saving image")
			return
		}
		response.Error(c, http.StatusBadRequest, "Failure uploading image")
		return
	}

	c.JSON(http.StatusOK, gin.H{"imgurl": url})
}
