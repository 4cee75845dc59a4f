package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is the frozen per-line snapshot captured at order creation.
// Product name, price and image are copied, not referenced, so later catalog
// changes never alter historical orders.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null" json:"productId"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Price     int       `gorm:"column:price;not null" json:"price"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	Image     string    `gorm:"column:image;not null" json:"image"`
	Total     int       `gorm:"column:total;not null" json:"total"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
