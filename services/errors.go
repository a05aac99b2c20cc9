package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any lookup when the search criteria
	// are malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchFailed wraps any failure of the journey catalog
	ErrSearchFailed = errors.New("search failed")
)

func invalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func searchFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrSearchFailed, err)
}
