package repository

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateTitle = errors.New("book title already exists")
	ErrDuplicateISBN  = errors.New("book isbn13 already exists")
	ErrBookMissing    = errors.New("book id not found")
)

// translateBookError maps unique-constraint violations onto the two domain
// errors the API reports separately. The match is on the constraint name in
// the driver's error text; anything else stays an infrastructure error.
func translateBookError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "books_title_key"):
		return ErrDuplicateTitle
	case strings.Contains(msg, "books_isbn13_key"):
		return ErrDuplicateISBN
	}
	return fmt.Errorf("book write failed: %w", err)
}

func translateReadError(err error) error {
	if strings.Contains(err.Error(), "readbooks_bookid_fkey") {
		return ErrBookMissing
	}
	return fmt.Errorf("read record write failed: %w", err)
}
