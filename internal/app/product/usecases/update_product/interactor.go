package update_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

// Request contains the data to update a product.
// Nil fields mean "leave unchanged".
type Request struct {
	ProductID string
	Category  *string
	Name      *string
}

// Interactor handles the update product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new update product interactor.
func NewInteractor(repo contracts.ProductRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute applies a partial update and returns the updated product.
// The load and the write share one read-write transaction, so a concurrent
// delete between them aborts the update instead of resurrecting the row.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	if req.ProductID == "" {
		return nil, domain.ErrMissingProductID
	}

	if req.Category == nil && req.Name == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var updated *contracts.ProductDTO

	err := i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		product, err := i.repo.GetByIDIn(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}

		if err := product.ApplyUpdate(req.Category, req.Name); err != nil {
			return err
		}

		if mut := i.repo.UpdateMut(product); mut != nil {
			if err := txn.BufferWrite([]*spanner.Mutation{mut}); err != nil {
				return err
			}
		}

		updated = contracts.NewProductDTO(product)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
