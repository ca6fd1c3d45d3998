package list_categories

import (
	"context"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
)

// Query handles the distinct categories query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list categories query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns every distinct category currently present, one occurrence each.
func (q *Query) Execute(ctx context.Context) ([]string, error) {
	return q.readModel.ListDistinctCategories(ctx)
}
