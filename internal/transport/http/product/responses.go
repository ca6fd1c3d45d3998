package product

import (
	"github.com/light-bringer/catalog-service/internal/app/product/contracts"
)

// productResponse is the external product shape. It exposes exactly the
// fields intended for clients, never the persisted entity itself.
type productResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// productListResponse is one page of products plus pagination metadata.
type productListResponse struct {
	Products      []productResponse `json:"products"`
	TotalPages    int               `json:"totalPages"`
	TotalElements int64             `json:"totalElements"`
	Page          int               `json:"page"`
}

func newProductResponse(dto *contracts.ProductDTO) productResponse {
	return productResponse{
		ID:       dto.ProductID,
		Category: dto.Category,
		Name:     dto.Name,
	}
}

func newProductListResponse(page *contracts.PageResult) productListResponse {
	products := make([]productResponse, 0, len(page.Products))
	for _, dto := range page.Products {
		products = append(products, newProductResponse(dto))
	}

	return productListResponse{
		Products:      products,
		TotalPages:    page.TotalPages,
		TotalElements: page.TotalElements,
		Page:          page.Page,
	}
}
