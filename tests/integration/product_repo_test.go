//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-service/internal/app/product/domain"
	"github.com/light-bringer/catalog-service/internal/app/product/repo"
	"github.com/light-bringer/catalog-service/internal/models/m_product"
	"github.com/light-bringer/catalog-service/internal/pkg/clock"
	"github.com/light-bringer/catalog-service/internal/pkg/committer"
	"github.com/light-bringer/catalog-service/tests/testutil"
)

func strPtr(s string) *string { return &s }

func TestProductRepo_InsertAndGetByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewRealClock()
	productRepo := repo.NewProductRepo(client, clk)
	comm := committer.NewCommitter(client)

	product, err := domain.NewProduct(uuid.New().String(), "electronics", "Headphones", clk.Now(), clk)
	require.NoError(t, err)

	plan := committer.NewPlan()
	plan.Add(productRepo.InsertMut(product))
	require.NoError(t, comm.Apply(ctx, plan))

	testutil.AssertRowCount(t, client, m_product.TableName, 1)

	loaded, err := productRepo.GetByID(ctx, product.ID())
	require.NoError(t, err)

	assert.Equal(t, product.ID(), loaded.ID())
	assert.Equal(t, "electronics", loaded.Category())
	assert.Equal(t, "Headphones", loaded.Name())
	assert.False(t, loaded.CreatedAt().IsZero())
	assert.False(t, loaded.Changes().HasChanges())
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	productRepo := repo.NewProductRepo(client, clock.NewRealClock())

	_, err := productRepo.GetByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepo_UpdateMut_WritesDirtyFieldsOnly(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	productRepo := repo.NewProductRepo(client, clock.NewRealClock())
	comm := committer.NewCommitter(client)

	productID := testutil.CreateTestProduct(t, client, "electronics", "Headphones")

	loaded, err := productRepo.GetByID(ctx, productID)
	require.NoError(t, err)

	require.NoError(t, loaded.ApplyUpdate(strPtr("audio"), nil))

	plan := committer.NewPlan()
	plan.Add(productRepo.UpdateMut(loaded))
	require.NoError(t, comm.Apply(ctx, plan))

	after := testutil.GetProductByID(t, client, productID)
	assert.Equal(t, "audio", after.Category)
	assert.Equal(t, "Headphones", after.Name)
	// updated_at is a commit timestamp, so the update moves it past the insert
	assert.True(t, after.UpdatedAt.After(after.CreatedAt))
}

func TestProductRepo_UpdateMut_NoChangesReturnsNil(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	productRepo := repo.NewProductRepo(client, clock.NewRealClock())

	productID := testutil.CreateTestProduct(t, client, "electronics", "Headphones")

	loaded, err := productRepo.GetByID(ctx, productID)
	require.NoError(t, err)

	assert.Nil(t, productRepo.UpdateMut(loaded))
}

func TestProductRepo_DeleteMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	productRepo := repo.NewProductRepo(client, clock.NewRealClock())
	comm := committer.NewCommitter(client)

	productID := testutil.CreateTestProduct(t, client, "books", "Go Basics")

	loaded, err := productRepo.GetByID(ctx, productID)
	require.NoError(t, err)

	plan := committer.NewPlan()
	plan.Add(productRepo.DeleteMut(loaded))
	require.NoError(t, comm.Apply(ctx, plan))

	testutil.AssertRowCount(t, client, m_product.TableName, 0)

	_, err = productRepo.GetByID(ctx, productID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
