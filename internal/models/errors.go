package models

import "errors"

var (
	// ErrNotFound reports that a referenced expense, group or budget does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a request that can never succeed as submitted,
	// e.g. an equal split over a group with no members.
	ErrInvalidInput = errors.New("invalid input")
)
