package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/enums"
)

// Repository wraps catalog persistence. The catalog is seeded and read only,
// so there is no write surface beyond the seeder.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns the full catalog, new releases first.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("is_new DESC, name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns every product in the category, new releases first.
func (r *Repository) ListByCategory(ctx context.Context, category enums.ProductCategory) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("is_new DESC, name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindBySlug loads a single product by its URL slug.
func (r *Repository) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByID loads a single product by primary key.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindBySlugs loads products for the given slugs, preserving the requested
// order. Slugs with no matching row are skipped rather than erroring.
func (r *Repository) FindBySlugs(ctx context.Context, slugs []string) ([]models.Product, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("slug IN ?", slugs).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	bySlug := make(map[string]models.Product, len(rows))
	for _, row := range rows {
		bySlug[row.Slug] = row
	}

	ordered := make([]models.Product, 0, len(slugs))
	for _, slug := range slugs {
		if row, ok := bySlug[slug]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}
