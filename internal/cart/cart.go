// Package cart implements the session-scoped shopping cart. A Cart is a plain
// value owned by exactly one session; mutations happen in request scope and
// the result is written back to the store, so no locking is involved.
package cart

import (
	"github.com/google/uuid"

	"github.com/amendezc/audiophile-backend/internal/pricing"
	"github.com/amendezc/audiophile-backend/pkg/db/models"
)

const (
	// MinQuantity and MaxQuantity bound the quantity selector.
	MinQuantity = 1
	MaxQuantity = 99
)

// Item is one cart line: a product snapshot plus quantity. The snapshot keeps
// cart rendering independent of catalog lookups.
type Item struct {
	ProductID uuid.UUID `json:"productId"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Price     int       `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
}

// Cart holds the ordered line items (insertion order) and the presentation
// visibility flag. At most one Item exists per product id.
type Cart struct {
	Items []Item `json:"items"`
	Open  bool   `json:"open"`
}

// Snapshot converts a catalog product into the cart line snapshot.
func Snapshot(p *models.Product) Item {
	return Item{
		ProductID: p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Images.Mobile,
	}
}

// AddItem merges the product into the cart: an existing line has its quantity
// incremented, otherwise a new line is appended. Duplicates are never created.
func (c *Cart) AddItem(item Item, quantity int) {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity + quantity)
			return
		}
	}
	item.Quantity = clampQuantity(quantity)
	c.Items = append(c.Items, item)
}

// RemoveItem drops the matching line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line quantity. Non-positive quantities remove the
// line; anything else is clamped to [MinQuantity, MaxQuantity].
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = clampQuantity(quantity)
			return
		}
	}
}

// Clear empties the cart and closes the drawer.
func (c *Cart) Clear() {
	c.Items = nil
	c.Open = false
}

// OpenCart, CloseCart and ToggleCart adjust the presentation flag only.
func (c *Cart) OpenCart()   { c.Open = true }
func (c *Cart) CloseCart()  { c.Open = false }
func (c *Cart) ToggleCart() { c.Open = !c.Open }

// ItemCount is the sum of line quantities, not the number of lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal delegates to the pricing engine over the current lines.
func (c *Cart) Subtotal() int {
	return pricing.Subtotal(c.lines())
}

// VAT returns the tax on the current subtotal.
func (c *Cart) VAT() int {
	return pricing.VAT(c.Subtotal())
}

// GrandTotal combines subtotal, flat shipping and VAT.
func (c *Cart) GrandTotal() int {
	subtotal := c.Subtotal()
	return pricing.GrandTotal(subtotal, pricing.ShippingCost(), pricing.VAT(subtotal))
}

func (c *Cart) lines() []pricing.Line {
	lines := make([]pricing.Line, len(c.Items))
	for i, item := range c.Items {
		lines[i] = pricing.Line{Price: item.Price, Quantity: item.Quantity}
	}
	return lines
}

func clampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
