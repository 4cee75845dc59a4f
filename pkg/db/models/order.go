package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/pkg/enums"
	"github.com/amendezc/audiophile-backend/pkg/types"
)

// Order is the durable checkout record. Totals are computed server side at
// creation and the invariant grand_total == subtotal + shipping_cost + vat
// holds on every persisted row. Only the status column mutates afterwards.
type Order struct {
	ID          uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string                `gorm:"column:order_number;not null;uniqueIndex" json:"orderNumber"`
	Shipping    types.ShippingDetails `gorm:"embedded" json:"shipping"`

	// The e-money pin is shape-checked during the simulated capture and then
	// discarded; it has no column here.
	PaymentMethod enums.PaymentMethod `gorm:"column:payment_method;type:text;not null" json:"paymentMethod"`
	EMoneyNumber  *string             `gorm:"column:emoney_number" json:"eMoneyNumber,omitempty"`

	Subtotal     int `gorm:"column:subtotal;not null" json:"subtotal"`
	ShippingCost int `gorm:"column:shipping_cost;not null" json:"shippingCost"`
	VAT          int `gorm:"column:vat;not null" json:"vat"`
	GrandTotal   int `gorm:"column:grand_total;not null" json:"grandTotal"`

	Status enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'" json:"status"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
