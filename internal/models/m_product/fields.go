package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID = "product_id"
	Category  = "category"
	Name      = "name"
	CreatedAt = "created_at"
	UpdatedAt = "updated_at"
)

// Columns lists every column of the products table, in read order.
func Columns() []string {
	return []string{
		ProductID,
		Category,
		Name,
		CreatedAt,
		UpdatedAt,
	}
}
