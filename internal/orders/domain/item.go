package domain

import (
	"github.com/shopspring/decimal"
)

// Item is a single product line within an order. It is immutable after
// construction and owned exclusively by its Order.
type Item struct {
	productName string
	quantity    int
	unitPrice   decimal.Decimal
}

// NewItem creates an order line item. Values are stored verbatim;
// validation is the responsibility of Order.AddItem.
func NewItem(productName string, quantity int, unitPrice decimal.Decimal) Item {
	return Item{
		productName: productName,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

// ProductName returns the product name.
func (i Item) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity times unit price, recomputed on access.
func (i Item) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
