package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testItem(price int) Item {
	return Item{
		ProductID: uuid.New(),
		Slug:      "xx99-mark-ii-headphones",
		Name:      "XX99 Mark II",
		Price:     price,
		Image:     "/assets/cart/image-xx99-mark-two-headphones.jpg",
	}
}

func TestAddItemMergesDuplicates(t *testing.T) {
	var c Cart
	item := testItem(2999)

	c.AddItem(item, 1)
	c.AddItem(item, 2)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	var c Cart
	first := testItem(2999)
	second := testItem(599)

	c.AddItem(first, 1)
	c.AddItem(second, 1)
	c.AddItem(first, 1)

	assert.Len(t, c.Items, 2)
	assert.Equal(t, first.ProductID, c.Items[0].ProductID)
	assert.Equal(t, second.ProductID, c.Items[1].ProductID)
}

func TestAddItemDefaultsToOne(t *testing.T) {
	var c Cart
	c.AddItem(testItem(99), 0)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(testItem(99), 1)
	c.RemoveItem(uuid.New())
	assert.Len(t, c.Items, 1)
}

func TestUpdateQuantityClampsAndRemoves(t *testing.T) {
	var c Cart
	item := testItem(99)
	c.AddItem(item, 1)

	c.UpdateQuantity(item.ProductID, 150)
	assert.Equal(t, 99, c.Items[0].Quantity)

	c.UpdateQuantity(item.ProductID, 5)
	assert.Equal(t, 5, c.Items[0].Quantity)

	c.UpdateQuantity(item.ProductID, 0)
	assert.Empty(t, c.Items)

	c.AddItem(item, 1)
	c.UpdateQuantity(item.ProductID, -5)
	assert.Empty(t, c.Items)
}

func TestClearClosesCart(t *testing.T) {
	var c Cart
	c.AddItem(testItem(99), 2)
	c.OpenCart()

	c.Clear()

	assert.Empty(t, c.Items)
	assert.False(t, c.Open)
}

func TestVisibilityFlag(t *testing.T) {
	var c Cart
	c.OpenCart()
	assert.True(t, c.Open)
	c.ToggleCart()
	assert.False(t, c.Open)
	c.ToggleCart()
	assert.True(t, c.Open)
	c.CloseCart()
	assert.False(t, c.Open)
}

func TestItemCountSumsQuantities(t *testing.T) {
	var c Cart
	c.AddItem(testItem(2999), 1)
	c.AddItem(testItem(99), 2)
	assert.Equal(t, 3, c.ItemCount())
}

func TestTotalsDelegateToPricing(t *testing.T) {
	var c Cart
	c.AddItem(testItem(2999), 1)
	c.AddItem(testItem(99), 2)

	assert.Equal(t, 3197, c.Subtotal())
	assert.Equal(t, 639, c.VAT())
	assert.Equal(t, 3886, c.GrandTotal())
}

func TestEmptyCartTotals(t *testing.T) {
	var c Cart
	assert.Equal(t, 0, c.Subtotal())
	assert.Equal(t, 0, c.VAT())
	assert.Equal(t, 50, c.GrandTotal()) // flat shipping only
	assert.Equal(t, 0, c.ItemCount())
}
