package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/models/m_product"
)

// CreateTestProduct creates a test product directly in the database and
// returns its id.
func CreateTestProduct(t *testing.T, client *spanner.Client, category, name string) string {
	t.Helper()

	ctx := context.Background()
	productID := uuid.New().String()
	now := time.Now()

	model := m_product.NewModel()
	data := &m_product.Data{
		ProductID: productID,
		Category:  category,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mutation := model.InsertMut(data)
	_, err := client.Apply(ctx, []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return productID
}

// GetProductByID retrieves a product row from the database for verification.
func GetProductByID(t *testing.T, client *spanner.Client, productID string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	err = row.ToStruct(&data)
	require.NoError(t, err, "failed to parse product data")

	return &data
}
