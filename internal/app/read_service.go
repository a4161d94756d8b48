package app

import (
	"errors"

	"bokasafn/internal/model"
	"bokasafn/internal/repository"
)

// ErrReadBookMissing covers an insert that referenced a book id with no row
// behind it.
var ErrReadBookMissing = errors.New("book id not found")

type ReadInput struct {
	BookID     uint
	UserRating int
	UserReview string
}

type ReadService struct {
	reads ReadStore
}

func NewReadService(reads ReadStore) *ReadService {
	return &ReadService{reads: reads}
}

// Add validates the input and reports problems per field, keyed the way the
// API has always keyed them.
func (s *ReadService) Add(userID uint, input ReadInput) (*model.ReadRecord, map[string]string, error) {
	fieldErrs := map[string]string{}
	if input.BookID == 0 {
		fieldErrs["bookid"] = "Book id must be included"
	}
	if input.UserRating < 1 || input.UserRating > 5 {
		fieldErrs["userrating"] = "User rating must be 1 - 5"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	record := &model.ReadRecord{
		UserID:     userID,
		BookID:     input.BookID,
		UserRating: input.UserRating,
		UserReview: input.UserReview,
	}
	if err := s.reads.Create(record); err != nil {
		if errors.Is(err, repository.ErrBookMissing) {
			return nil, nil, ErrReadBookMissing
		}
		return nil, nil, err
	}
	return record, nil, nil
}

func (s *ReadService) ListForUser(userID uint, limit, offset int) ([]model.ReadRecord, error) {
	return s.reads.ListByUser(userID, limit, offset)
}

// Delete reports only whether a row went away. A miss on id and a miss on
// ownership are indistinguishable on purpose.
func (s *ReadService) Delete(id, userID uint) (bool, error) {
	affected, err := s.reads.DeleteOwned(id, userID)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
