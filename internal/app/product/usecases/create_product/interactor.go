package create_product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Category string
	Name     string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	committer *committer.Committer
	clock     clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute creates a new product and returns its persisted representation.
// The id is assigned here, never supplied by the client.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(productID, req.Category, req.Name, now, i.clock)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(product))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return contracts.NewProductDTO(product), nil
}
