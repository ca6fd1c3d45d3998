package product

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
	"github.com/light-bringer/catalog-service/internal/transport/http/response"
)

// Usecase and query capabilities the handler depends on. Declared here so
// handler tests can substitute fakes without a Spanner client.
type (
	CreateProductUsecase interface {
		Execute(ctx context.Context, req *create_product.Request) (*contracts.ProductDTO, error)
	}
	UpdateProductUsecase interface {
		Execute(ctx context.Context, req *update_product.Request) (*contracts.ProductDTO, error)
	}
	DeleteProductUsecase interface {
		Execute(ctx context.Context, req *delete_product.Request) error
	}
	GetProductQuery interface {
		Execute(ctx context.Context, req *get_product.Request) (*contracts.ProductDTO, error)
	}
	ListProductsQuery interface {
		Execute(ctx context.Context, req *list_products.Request) (*contracts.PageResult, error)
	}
	ListCategoriesQuery interface {
		Execute(ctx context.Context) ([]string, error)
	}
)

// Handler maps HTTP requests to product usecases and queries.
// It is a thin coordinator; all business rules live below it.
type Handler struct {
	createProduct  CreateProductUsecase
	updateProduct  UpdateProductUsecase
	deleteProduct  DeleteProductUsecase
	getProduct     GetProductQuery
	listProducts   ListProductsQuery
	listCategories ListCategoriesQuery
	logger         *logrus.Logger
}

// NewHandler creates a new HTTP product handler.
func NewHandler(
	createProduct CreateProductUsecase,
	updateProduct UpdateProductUsecase,
	deleteProduct DeleteProductUsecase,
	getProduct GetProductQuery,
	listProducts ListProductsQuery,
	listCategories ListCategoriesQuery,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		createProduct:  createProduct,
		updateProduct:  updateProduct,
		deleteProduct:  deleteProduct,
		getProduct:     getProduct,
		listProducts:   listProducts,
		listCategories: listCategories,
		logger:         logger,
	}
}

// RegisterRoutes mounts the product routes on the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Get("/categories", h.ListCategories)
		r.Get("/{productID}", h.GetProduct)
		r.Put("/{productID}", h.UpdateProduct)
		r.Delete("/{productID}", h.DeleteProduct)
	})
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, errMalformedBody)
		return
	}

	dto, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		Category: body.Category,
		Name:     body.Name,
	})
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, newProductResponse(dto))
}

// GetProduct handles GET /products/{productID}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	response.JSON(w, http.StatusOK, newProductResponse(dto))
}

// UpdateProduct handles PUT /products/{productID}.
// Absent body fields keep their persisted values.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, errMalformedBody)
		return
	}

	dto, err := h.updateProduct.Execute(r.Context(), &update_product.Request{
		ProductID: chi.URLParam(r, "productID"),
		Category:  body.Category,
		Name:      body.Name,
	})
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	response.JSON(w, http.StatusOK, newProductResponse(dto))
}

// DeleteProduct handles DELETE /products/{productID}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.deleteProduct.Execute(r.Context(), &delete_product.Request{
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.listProducts.Execute(r.Context(), req)
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	response.JSON(w, http.StatusOK, newProductListResponse(page))
}

// ListCategories handles GET /products/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listCategories.Execute(r.Context())
	if err != nil {
		h.writeError(r, w, err)
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

// writeError maps an application error to its HTTP status and logs system errors.
func (h *Handler) writeError(r *http.Request, w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"error":  err.Error(),
		}).Error("request failed")
	}
	response.Error(w, status, err)
}
