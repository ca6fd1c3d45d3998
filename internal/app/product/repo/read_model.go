package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product DTO by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
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

	return dataToDTO(&data), nil
}

// ListProducts retrieves one page of products plus metadata for the full
// result set. The count and the page run against the same read-only
// transaction, so both describe one snapshot of the table.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.PageResult, error) {
	base := query.From(m_product.TableName)
	if filter.Category != "" {
		// Exact, case-sensitive match. Blank means all categories.
		base = base.Where(query.Eq(m_product.Category, filter.Category))
	}

	txn := rm.client.ReadOnlyTransaction()
	defer txn.Close()

	total, err := rm.countRows(ctx, txn, base.Count().Build())
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", wrapStoreErr(err))
	}

	// Category is the sole sort key; product_id pins a deterministic
	// order for rows within the same category.
	stmt := base.Select(m_product.Columns()...).
		OrderBy(m_product.Category, query.Asc).
		OrderBy(m_product.ProductID, query.Asc).
		Limit(int64(filter.Size)).
		Offset(int64(filter.Page) * int64(filter.Size)).
		Build()

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, filter.Size)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", wrapStoreErr(err))
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		products = append(products, dataToDTO(&data))
	}

	return contracts.NewPageResult(products, total, filter.Page, filter.Size), nil
}

// ListDistinctCategories returns every distinct category, ordered by
// category so the result is stable for a fixed dataset.
func (rm *ReadModelImpl) ListDistinctCategories(ctx context.Context) ([]string, error) {
	stmt := query.From(m_product.TableName).
		Select(m_product.Category).
		Distinct().
		OrderBy(m_product.Category, query.Asc).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	categories := make([]string, 0)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate categories: %w", wrapStoreErr(err))
		}

		var category string
		if err := row.Column(0, &category); err != nil {
			return nil, fmt.Errorf("failed to parse category: %w", err)
		}

		categories = append(categories, category)
	}

	return categories, nil
}

// countRows executes a COUNT(*) statement and returns the single value.
func (rm *ReadModelImpl) countRows(ctx context.Context, txn *spanner.ReadOnlyTransaction, stmt spanner.Statement) (int64, error) {
	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, err
	}

	return count, nil
}

// dataToDTO converts database Data to a ProductDTO.
func dataToDTO(data *m_product.Data) *contracts.ProductDTO {
	return &contracts.ProductDTO{
		ProductID: data.ProductID,
		Category:  data.Category,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
