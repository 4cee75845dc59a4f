package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/enums"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  is_new INTEGER NOT NULL DEFAULT 0,
  price INTEGER NOT NULL,
  description TEXT NOT NULL,
  features TEXT NOT NULL,
  included_items TEXT,
  gallery TEXT,
  images TEXT,
  category_image TEXT,
  related_products TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, conn.Exec(products).Error)
	return conn
}

func mustCreateProduct(t *testing.T, conn *gorm.DB, slug string, category enums.ProductCategory, isNew bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Slug:        slug,
		Name:        slug,
		Category:    category,
		IsNew:       isNew,
		Price:       2999,
		Description: "desc",
		Features:    "features",
	}
	require.NoError(t, conn.Create(product).Error)
	return product
}

func TestListByCategoryOrdersNewFirst(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	mustCreateProduct(t, conn, "zx7-speaker", enums.CategorySpeakers, false)
	mustCreateProduct(t, conn, "zx9-speaker", enums.CategorySpeakers, true)
	mustCreateProduct(t, conn, "yx1-earphones", enums.CategoryEarphones, true)

	got, err := repo.ListByCategory(ctx, enums.CategorySpeakers)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "zx9-speaker", got[0].Slug)
	assert.Equal(t, "zx7-speaker", got[1].Slug)
}

func TestFindBySlugMissing(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindBySlugsPreservesOrderAndSkipsMissing(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	mustCreateProduct(t, conn, "xx99-mark-one-headphones", enums.CategoryHeadphones, false)
	mustCreateProduct(t, conn, "xx59-headphones", enums.CategoryHeadphones, false)

	got, err := repo.FindBySlugs(ctx, []string{"xx59-headphones", "gone", "xx99-mark-one-headphones"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "xx59-headphones", got[0].Slug)
	assert.Equal(t, "xx99-mark-one-headphones", got[1].Slug)
}

func TestRelatedProductsRoundTrip(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	product := &models.Product{
		ID:              uuid.New(),
		Slug:            "xx99-mark-two-headphones",
		Name:            "XX99 Mark II",
		Category:        enums.CategoryHeadphones,
		Price:           2999,
		Description:     "desc",
		Features:        "features",
		RelatedProducts: pq.StringArray{"xx99-mark-one-headphones", "xx59-headphones"},
	}
	require.NoError(t, conn.Create(product).Error)

	got, err := repo.FindBySlug(ctx, "xx99-mark-two-headphones")
	require.NoError(t, err)
	assert.Equal(t, []string{"xx99-mark-one-headphones", "xx59-headphones"}, []string(got.RelatedProducts))
}
