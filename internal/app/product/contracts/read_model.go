package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries.
// It is the only product shape that leaves the application layer;
// the domain aggregate never reaches a response body.
type ProductDTO struct {
	ProductID string
	Category  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListFilter defines filtering and pagination options for listing products.
type ListFilter struct {
	// Category filters by exact, case-sensitive equality; blank matches all.
	Category string
	// Page is the zero-based page index.
	Page int
	// Size is the page length.
	Size int
}

// PageResult contains one page of products plus pagination metadata
// describing the full result set.
type PageResult struct {
	Products      []*ProductDTO
	TotalPages    int
	TotalElements int64
	Page          int
}

// NewPageResult assembles a PageResult, deriving TotalPages as
// ceil(totalElements / size).
func NewPageResult(products []*ProductDTO, totalElements int64, page, size int) *PageResult {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return &PageResult{
		Products:      products,
		TotalPages:    totalPages,
		TotalElements: totalElements,
		Page:          page,
	}
}

// ReadModel defines the interface for product queries.
// Read models bypass the domain layer; they return DTOs directly.
type ReadModel interface {
	// GetProductByID retrieves a product DTO by ID.
	// Returns domain.ErrProductNotFound when no row exists for the id.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)

	// ListProducts retrieves one page of products with filtering. The count
	// and the page are read from the same snapshot, so the metadata always
	// describes the returned page's dataset.
	ListProducts(ctx context.Context, filter *ListFilter) (*PageResult, error)

	// ListDistinctCategories returns every distinct category value, one
	// occurrence each, in a deterministic order.
	ListDistinctCategories(ctx context.Context) ([]string, error)
}
