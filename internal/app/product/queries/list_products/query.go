package list_products

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
)

// Request contains filtering and pagination parameters.
type Request struct {
	Category string
	Page     int
	Size     int
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a paginated list of products. A page past the end of the
// result set is not an error; it returns empty items with real totals.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.PageResult, error) {
	if req.Page < 0 || req.Size < 1 {
		return nil, domain.ErrInvalidPageRequest
	}

	filter := &contracts.ListFilter{
		Category: req.Category,
		Page:     req.Page,
		Size:     req.Size,
	}

	return q.readModel.ListProducts(ctx, filter)
}
