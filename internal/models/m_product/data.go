package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	ProductID string    `spanner:"product_id"`
	Category  string    `spanner:"category"`
	Name      string    `spanner:"name"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
