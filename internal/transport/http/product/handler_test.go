package product

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/catalog-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/catalog-service/internal/app/product/usecases/update_product"
)

type fakeCreateProduct struct {
	dto *contracts.ProductDTO
	err error
	got *create_product.Request
}

func (f *fakeCreateProduct) Execute(_ context.Context, req *create_product.Request) (*contracts.ProductDTO, error) {
	f.got = req
	return f.dto, f.err
}

type fakeUpdateProduct struct {
	dto *contracts.ProductDTO
	err error
	got *update_product.Request
}

func (f *fakeUpdateProduct) Execute(_ context.Context, req *update_product.Request) (*contracts.ProductDTO, error) {
	f.got = req
	return f.dto, f.err
}

type fakeDeleteProduct struct {
	err error
	got *delete_product.Request
}

func (f *fakeDeleteProduct) Execute(_ context.Context, req *delete_product.Request) error {
	f.got = req
	return f.err
}

type fakeGetProduct struct {
	dto *contracts.ProductDTO
	err error
	got *get_product.Request
}

func (f *fakeGetProduct) Execute(_ context.Context, req *get_product.Request) (*contracts.ProductDTO, error) {
	f.got = req
	return f.dto, f.err
}

type fakeListProducts struct {
	page   *contracts.PageResult
	err    error
	got    *list_products.Request
	called bool
}

func (f *fakeListProducts) Execute(_ context.Context, req *list_products.Request) (*contracts.PageResult, error) {
	f.called = true
	f.got = req
	return f.page, f.err
}

type fakeListCategories struct {
	categories []string
	err        error
}

func (f *fakeListCategories) Execute(_ context.Context) ([]string, error) {
	return f.categories, f.err
}

type handlerFakes struct {
	create     *fakeCreateProduct
	update     *fakeUpdateProduct
	delete     *fakeDeleteProduct
	get        *fakeGetProduct
	list       *fakeListProducts
	categories *fakeListCategories
}

func newTestHandler() (*handlerFakes, http.Handler) {
	fakes := &handlerFakes{
		create:     &fakeCreateProduct{},
		update:     &fakeUpdateProduct{},
		delete:     &fakeDeleteProduct{},
		get:        &fakeGetProduct{},
		list:       &fakeListProducts{},
		categories: &fakeListCategories{},
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handler := NewHandler(
		fakes.create,
		fakes.update,
		fakes.delete,
		fakes.get,
		fakes.list,
		fakes.categories,
		logger,
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return fakes, router
}

func testDTO(id, category, name string) *contracts.ProductDTO {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return &contracts.ProductDTO{
		ProductID: id,
		Category:  category,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func doRequest(t *testing.T, router http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHandler_CreateProduct(t *testing.T) {
	t.Run("creates product and returns 201", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.create.dto = testDTO("id-1", "electronics", "Headphones")

		rec := doRequest(t, router, http.MethodPost, "/products", map[string]string{
			"category": "electronics",
			"name":     "Headphones",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "id-1", body["id"])
		assert.Equal(t, "electronics", body["category"])
		assert.Equal(t, "Headphones", body["name"])

		require.NotNil(t, fakes.create.got)
		assert.Equal(t, "electronics", fakes.create.got.Category)
		assert.Equal(t, "Headphones", fakes.create.got.Name)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		_, router := newTestHandler()

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("blank name maps to 400", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.create.err = domain.ErrEmptyName

		rec := doRequest(t, router, http.MethodPost, "/products", map[string]string{
			"category": "electronics",
			"name":     "  ",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "bad_request", body["error"])
	})
}

func TestHandler_GetProduct(t *testing.T) {
	t.Run("returns product", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.get.dto = testDTO("id-1", "books", "Go Basics")

		rec := doRequest(t, router, http.MethodGet, "/products/id-1", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "id-1", body["id"])
		assert.Equal(t, "books", body["category"])

		require.NotNil(t, fakes.get.got)
		assert.Equal(t, "id-1", fakes.get.got.ProductID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.get.err = domain.ErrProductNotFound

		rec := doRequest(t, router, http.MethodGet, "/products/missing", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "not_found", body["error"])
	})

	t.Run("store outage returns 503", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.get.err = errors.Join(domain.ErrStoreUnavailable, errors.New("deadline exceeded"))

		rec := doRequest(t, router, http.MethodGet, "/products/id-1", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_UpdateProduct(t *testing.T) {
	t.Run("partial body keeps absent fields nil", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.update.dto = testDTO("id-1", "audio", "Headphones")

		rec := doRequest(t, router, http.MethodPut, "/products/id-1", map[string]string{
			"category": "audio",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		require.NotNil(t, fakes.update.got)
		assert.Equal(t, "id-1", fakes.update.got.ProductID)
		require.NotNil(t, fakes.update.got.Category)
		assert.Equal(t, "audio", *fakes.update.got.Category)
		assert.Nil(t, fakes.update.got.Name)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.update.err = domain.ErrProductNotFound

		rec := doRequest(t, router, http.MethodPut, "/products/missing", map[string]string{
			"name": "New Name",
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.update.err = domain.ErrNoFieldsToUpdate

		rec := doRequest(t, router, http.MethodPut, "/products/id-1", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		_, router := newTestHandler()

		req := httptest.NewRequest(http.MethodPut, "/products/id-1", bytes.NewReader([]byte("[")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_DeleteProduct(t *testing.T) {
	t.Run("returns 204 with empty body", func(t *testing.T) {
		fakes, router := newTestHandler()

		rec := doRequest(t, router, http.MethodDelete, "/products/id-1", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())

		require.NotNil(t, fakes.delete.got)
		assert.Equal(t, "id-1", fakes.delete.got.ProductID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.delete.err = domain.ErrProductNotFound

		rec := doRequest(t, router, http.MethodDelete, "/products/missing", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_ListProducts(t *testing.T) {
	t.Run("returns page with metadata", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.list.page = contracts.NewPageResult([]*contracts.ProductDTO{
			testDTO("id-1", "electronics", "Headphones"),
			testDTO("id-2", "electronics", "Keyboard"),
		}, 3, 0, 2)

		rec := doRequest(t, router, http.MethodGet, "/products?category=electronics&page=0&size=2", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body productListResponse
		decodeBody(t, rec, &body)
		assert.Len(t, body.Products, 2)
		assert.Equal(t, 2, body.TotalPages)
		assert.Equal(t, int64(3), body.TotalElements)
		assert.Equal(t, 0, body.Page)

		require.NotNil(t, fakes.list.got)
		assert.Equal(t, "electronics", fakes.list.got.Category)
		assert.Equal(t, 0, fakes.list.got.Page)
		assert.Equal(t, 2, fakes.list.got.Size)
	})

	t.Run("empty page serializes as empty array", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.list.page = contracts.NewPageResult(nil, 3, 9, 10)

		rec := doRequest(t, router, http.MethodGet, "/products?page=9&size=10", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"products":[]`)
	})

	t.Run("non-numeric page returns 400 without running the query", func(t *testing.T) {
		fakes, router := newTestHandler()

		rec := doRequest(t, router, http.MethodGet, "/products?page=abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, fakes.list.called)
	})

	t.Run("negative page maps to 400", func(t *testing.T) {
		fakes, router := newTestHandler()
		fakes.list.err = domain.ErrInvalidPageRequest

		rec := doRequest(t, router, http.MethodGet, "/products?page=-1", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ListCategories(t *testing.T) {
	fakes, router := newTestHandler()
	fakes.categories.categories = []string{"books", "electronics"}

	rec := doRequest(t, router, http.MethodGet, "/products/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []string
	decodeBody(t, rec, &body)
	assert.Equal(t, []string{"books", "electronics"}, body)
}
