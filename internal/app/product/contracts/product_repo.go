package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
)

// RowReader abstracts the row-read surface shared by Spanner single-use and
// read-write transactions. Read-then-write operations pass their transaction
// here so the existence check and the write share one transactional scope.
type RowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
}

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product
	InsertMut(product *domain.Product) *spanner.Mutation

	// UpdateMut creates a mutation for updating a product (only dirty fields).
	// Returns nil when the aggregate has no changes.
	UpdateMut(product *domain.Product) *spanner.Mutation

	// DeleteMut creates a mutation for removing a product
	DeleteMut(product *domain.Product) *spanner.Mutation

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	// Returns domain.ErrProductNotFound when no row exists for the id.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetByIDIn is GetByID executed against the supplied reader, typically
	// a read-write transaction that will also carry the subsequent write.
	GetByIDIn(ctx context.Context, reader RowReader, productID string) (*domain.Product, error)
}
