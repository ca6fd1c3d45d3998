package delete_product

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

// Request identifies the product to delete.
type Request struct {
	ProductID string
}

// Interactor handles the delete product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(repo contracts.ProductRepository, committer *committer.Committer) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute removes a product by id. Deleting an id with no record fails with
// domain.ErrProductNotFound, so a second delete of the same id is reported,
// not silently ignored.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ProductID == "" {
		return domain.ErrMissingProductID
	}

	return i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		product, err := i.repo.GetByIDIn(ctx, txn, req.ProductID)
		if err != nil {
			return err
		}

		return txn.BufferWrite([]*spanner.Mutation{i.repo.DeleteMut(product)})
	})
}
