package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_categories"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/repo"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	producthttp "github.com/light-bringer/catalog-service/internal/transport/http/product"
)

// ServiceOptions holds all dependencies for the application.
// Collaborators are wired here explicitly; there is no process-wide registry.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	ProductHandler *producthttp.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, logger *logrus.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	productRepo := repo.NewProductRepo(spannerClient, clk)
	readModel := repo.NewReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	createProductUseCase := create_product.NewInteractor(productRepo, comm, clk)
	updateProductUseCase := update_product.NewInteractor(productRepo, comm)
	deleteProductUseCase := delete_product.NewInteractor(productRepo, comm)

	// 5. Create query use cases (read operations)
	getProductQuery := get_product.NewQuery(readModel)
	listProductsQuery := list_products.NewQuery(readModel)
	listCategoriesQuery := list_categories.NewQuery(readModel)

	// 6. Create HTTP handler
	productHandler := producthttp.NewHandler(
		createProductUseCase,
		updateProductUseCase,
		deleteProductUseCase,
		getProductQuery,
		listProductsQuery,
		listCategoriesQuery,
		logger,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		ProductHandler: productHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
