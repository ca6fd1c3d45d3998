package product

import (
	"errors"
	"net/http"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
)

// statusForError converts application errors to HTTP status codes.
// NotFound and validation failures are caller errors; store outages and
// anything unclassified are system errors.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrMissingProductID),
		errors.Is(err, domain.ErrNoFieldsToUpdate),
		errors.Is(err, domain.ErrInvalidPageRequest):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
