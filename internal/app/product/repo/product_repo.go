package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) *spanner.Mutation {
	return r.model.InsertMut(&m_product.Data{
		ProductID: product.ID(),
		Category:  product.Category(),
		Name:      product.Name(),
		CreatedAt: product.CreatedAt(),
		UpdatedAt: product.UpdatedAt(),
	})
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) *spanner.Mutation {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldCategory) {
		updates[m_product.Category] = product.Category()
	}

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if len(updates) == 0 {
		return nil
	}

	return r.model.UpdateMut(product.ID(), updates)
}

// DeleteMut creates a mutation for removing a product.
func (r *ProductRepo) DeleteMut(product *domain.Product) *spanner.Mutation {
	return r.model.DeleteMut(product.ID())
}

// GetByID retrieves a product by ID using a single-use read.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.GetByIDIn(ctx, r.client.Single(), productID)
}

// GetByIDIn retrieves a product by ID through the supplied reader,
// reconstructing the domain aggregate.
func (r *ProductRepo) GetByIDIn(ctx context.Context, reader contracts.RowReader, productID string) (*domain.Product, error) {
	row, err := reader.ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", wrapStoreErr(err))
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Category,
		data.Name,
		data.CreatedAt,
		data.UpdatedAt,
		r.clock,
	), nil
}

// wrapStoreErr tags connectivity failures with domain.ErrStoreUnavailable so
// callers can tell a store outage apart from a data error.
func wrapStoreErr(err error) error {
	switch spanner.ErrCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Join(domain.ErrStoreUnavailable, err)
	}
	return err
}
