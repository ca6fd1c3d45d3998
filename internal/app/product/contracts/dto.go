package contracts

import "github.com/light-bringer/catalog-service/internal/app/product/domain"

// NewProductDTO shapes a domain aggregate into its external representation.
func NewProductDTO(product *domain.Product) *ProductDTO {
	return &ProductDTO{
		ProductID: product.ID(),
		Category:  product.Category(),
		Name:      product.Name(),
		CreatedAt: product.CreatedAt(),
		UpdatedAt: product.UpdatedAt(),
	}
}
