package catalog

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amendezc/audiophile-backend/pkg/enums"
	pkgerrors "github.com/amendezc/audiophile-backend/pkg/errors"
)

func setupCatalogService(t *testing.T) (Service, *Repository) {
	t.Helper()
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestListProductsRejectsUnknownCategory(t *testing.T) {
	svc, _ := setupCatalogService(t)

	_, err := svc.ListProducts(context.Background(), "turntables")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListProductsEmptyCategoryListsAll(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	mustCreateProduct(t, conn, "zx9-speaker", enums.CategorySpeakers, true)
	mustCreateProduct(t, conn, "yx1-earphones", enums.CategoryEarphones, false)

	got, err := svc.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	svc, _ := setupCatalogService(t)

	_, err := svc.GetProductBySlug(context.Background(), "gone")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestGetRelatedProductsDropsMissingSlugs(t *testing.T) {
	conn := setupCatalogTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	base := mustCreateProduct(t, conn, "xx99-mark-two-headphones", enums.CategoryHeadphones, true)
	base.RelatedProducts = pq.StringArray{"xx59-headphones", "discontinued"}
	require.NoError(t, conn.Save(base).Error)

	mustCreateProduct(t, conn, "xx59-headphones", enums.CategoryHeadphones, false)

	got, err := svc.GetRelatedProducts(context.Background(), "xx99-mark-two-headphones")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "xx59-headphones", got[0].Slug)
}
