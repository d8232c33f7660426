package models

import "errors"

// Validation errors shared by the service layer and the clients
var (
	// ErrEmptyTitle indicates a missing or blank title
	ErrEmptyTitle = errors.New("title is required")

	// ErrEmptyDescription indicates a missing or blank description
	ErrEmptyDescription = errors.New("description is required")

	// ErrInvalidStatus indicates a status outside open, in-progress, closed
	ErrInvalidStatus = errors.New("invalid status")
)
