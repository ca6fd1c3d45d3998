package domain

import "errors"

// Domain errors as sentinel values
var (
	// Not-found: the requested id has no corresponding record
	ErrProductNotFound = errors.New("product not found")

	// Validation: raised before any store call is attempted
	ErrEmptyName          = errors.New("product name cannot be blank")
	ErrEmptyCategory      = errors.New("product category cannot be blank")
	ErrMissingProductID   = errors.New("product id is required")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
	ErrInvalidPageRequest = errors.New("page must be >= 0 and size must be >= 1")

	// Store: the backing store could not complete the operation
	ErrStoreUnavailable = errors.New("store unavailable")
)
