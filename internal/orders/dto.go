package orders

import (
	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/pkg/db/models"
	"github.com/amendezc/audiophile-backend/pkg/pagination"
)

// ShippingInput is the customer address block submitted at checkout.
type ShippingInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	ZipCode string
	City    string
	Country string
}

// PaymentInput carries the chosen payment method. The e-money fields are
// required only when the method is eMoney.
type PaymentInput struct {
	Method       string
	EMoneyNumber string
	EMoneyPin    string
}

// LineInput references a catalog product by id with the desired quantity.
type LineInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// AdvisoryTotals is the client's view of the totals, accepted for telemetry
// only. The persisted totals are always recomputed server side.
type AdvisoryTotals struct {
	Subtotal   int
	VAT        int
	Shipping   int
	GrandTotal int
}

// CreateOrderInput is the validated checkout payload.
type CreateOrderInput struct {
	Shipping ShippingInput
	Payment  PaymentInput
	Items    []LineInput
	Totals   *AdvisoryTotals
}

// OrderList is one page of a customer's order history.
type OrderList struct {
	Orders []models.Order
	Cursor string
}

// ListByEmailInput filters order history by the shipping email.
type ListByEmailInput struct {
	Email      string
	Pagination pagination.Params
}
