package product

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var errMalformedBody = errors.New("malformed request body")

// createProductRequest is the inbound shape for POST /products.
// Both fields are required non-blank; the usecase enforces it.
type createProductRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// updateProductRequest is the inbound shape for PUT /products/{productID}.
// A null or absent field means "leave unchanged". The id comes from the URL
// path and is never part of the mutable payload.
type updateProductRequest struct {
	Category *string `json:"category"`
	Name     *string `json:"name"`
}

// parseListQuery binds ?category=&page=&size= into a list request.
// page defaults to 0, size to defaultPageSize with a cap of maxPageSize.
func parseListQuery(r *http.Request) (*list_products.Request, error) {
	q := r.URL.Query()

	page := 0
	if raw := q.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.ErrInvalidPageRequest
		}
		page = parsed
	}

	size := defaultPageSize
	if raw := q.Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, domain.ErrInvalidPageRequest
		}
		size = parsed
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return &list_products.Request{
		Category: q.Get("category"),
		Page:     page,
		Size:     size,
	}, nil
}
