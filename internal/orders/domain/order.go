package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the lifecycle stage of an order
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ParseStatus converts a string into a Status
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), nil
	}
	return "", NewUnknownStatus(s)
}

// Order represents the order domain entity. It owns its items
// exclusively; the item list only grows through AddItem.
type Order struct {
	id     int
	date   time.Time
	status Status
	items  []Item
}

// NewOrder creates an order with a caller-assigned id, a Pending status
// and no items. The order date is set to the current time.
func NewOrder(id int) *Order {
	return &Order{
		id:     id,
		date:   time.Now(),
		status: StatusPending,
	}
}

// ID returns the caller-assigned order id.
func (o *Order) ID() int {
	return o.id
}

// Date returns the time the order was created.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// SetStatus assigns the status directly. Only the Pending to Processing
// transition is guarded (see Process); every other status change is an
// unvalidated assignment.
func (o *Order) SetStatus(s Status) {
	o.status = s
}

// Items returns a copy of the item list in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of line items.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// AddItem validates and appends a line item. The product name must be
// non-blank, quantity positive and unit price non-negative; nothing is
// appended on failure.
func (o *Order) AddItem(productName string, quantity int, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(productName) == "" {
		return ErrProductNameEmpty
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	if unitPrice.IsNegative() {
		return ErrUnitPriceNegative
	}

	o.items = append(o.items, NewItem(productName, quantity, unitPrice))
	return nil
}

// Process transitions the order from Pending to Processing. Any other
// current status is an invalid operation.
func (o *Order) Process() error {
	if o.status != StatusPending {
		return ErrNotPending
	}

	o.status = StatusProcessing
	return nil
}

// TotalAmount returns the sum of quantity times unit price over all
// items, zero when the order is empty.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// Summary returns a multi-line text summary of the order.
func (o *Order) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order #%d\n", o.id)
	fmt.Fprintf(&b, "Date: %s\n", o.date.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	fmt.Fprintf(&b, "Items: %d\n", len(o.items))
	fmt.Fprintf(&b, "Total: $%s\n", o.TotalAmount().StringFixed(2))

	return b.String()
}
