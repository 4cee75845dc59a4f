package types

// ShippingDetails is the customer-facing address block captured at checkout.
// Embedded into orders with a shipping_ column prefix; shipping_email is
// indexed for order history lookups.
type ShippingDetails struct {
	Name    string `gorm:"column:shipping_name;not null" json:"name"`
	Email   string `gorm:"column:shipping_email;not null;index" json:"email"`
	Phone   string `gorm:"column:shipping_phone;not null" json:"phone"`
	Address string `gorm:"column:shipping_address;not null" json:"address"`
	ZipCode string `gorm:"column:shipping_zip_code;not null" json:"zipCode"`
	City    string `gorm:"column:shipping_city;not null" json:"city"`
	Country string `gorm:"column:shipping_country;not null" json:"country"`
}
