package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrImageUploadFailed = errors.New("image upload failed")
	ErrImageSaveFailed   = errors.New("image url save failed")
)

type ImageService struct {
	users    UserStore
	uploader ImageUploader
}

func NewImageService(users UserStore, uploader ImageUploader) *ImageService {
	return &ImageService{users: users, uploader: uploader}
}

// SetProfileImage pushes the spooled upload to the image host and records
// the returned URL on the user. The local temp file is removed on every
// path, success or failure.
func (s *ImageService) SetProfileImage(ctx context.Context, userID uint, filePath, contentType string) (string, error) {
	defer os.Remove(filePath)

	if s.uploader == nil {
		return "", ErrImageUploadFailed
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", ErrImageUploadFailed
	}
	defer file.Close()

	key := uuid.New().String() + strings.ToLower(filepath.Ext(filePath))
	url, err := s.uploader.Upload(ctx, key, file, contentType)
	if err != nil {
		return "", ErrImageUploadFailed
	}

	if _, err := s.users.SaveImageURL(userID, url); err != nil {
		return "", ErrImageSaveFailed
	}
	return url, nil
}
