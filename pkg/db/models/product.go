package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/amendezc/audiophile-backend/pkg/enums"
	"github.com/amendezc/audiophile-backend/pkg/types"
)

// Product is one catalog listing. Rows are seeded once and treated as
// immutable afterwards; orders snapshot the fields they need instead of
// referencing these rows.
type Product struct {
	ID              uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug            string                `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Name            string                `gorm:"column:name;not null" json:"name"`
	Category        enums.ProductCategory `gorm:"column:category;type:text;not null;index" json:"category"`
	IsNew           bool                  `gorm:"column:is_new;not null;default:false" json:"isNew"`
	Price           int                   `gorm:"column:price;not null" json:"price"`
	Description     string                `gorm:"column:description;not null" json:"description"`
	Features        string                `gorm:"column:features;not null" json:"features"`
	IncludedItems   []types.IncludedItem  `gorm:"column:included_items;type:jsonb;serializer:json" json:"includedItems"`
	Gallery         types.Gallery         `gorm:"column:gallery;type:jsonb;serializer:json" json:"gallery"`
	Images          types.ImageSet        `gorm:"column:images;type:jsonb;serializer:json" json:"images"`
	CategoryImage   types.ImageSet        `gorm:"column:category_image;type:jsonb;serializer:json" json:"categoryImage"`
	RelatedProducts pq.StringArray        `gorm:"column:related_products;type:text[]" json:"relatedProducts"`
	CreatedAt       time.Time             `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
