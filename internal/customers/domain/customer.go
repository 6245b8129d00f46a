package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	orders "go-commerce/internal/orders/domain"
)

// MaxOrdersPerDay is the maximum number of orders a customer may hold
const MaxOrdersPerDay = 10

// Customer represents the customer domain entity. It owns its orders
// exclusively; the order list only grows through AddOrder.
type Customer struct {
	firstName        string
	lastName         string
	email            string
	registrationDate time.Time
	membershipLevel  MembershipLevel
	orders           []*orders.Order
}

// NewCustomer creates a customer with the default Bronze membership.
// Names must be non-blank and the email must be well-formed per
// ValidEmail; the registration date is set to the current time.
func NewCustomer(firstName, lastName, email string) (*Customer, error) {
	c := &Customer{
		registrationDate: time.Now(),
		membershipLevel:  MembershipBronze,
	}

	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}

	return c, nil
}

// NewCustomerWithLevel creates a customer with an explicit initial
// membership level.
func NewCustomerWithLevel(firstName, lastName, email string, level MembershipLevel) (*Customer, error) {
	c, err := NewCustomer(firstName, lastName, email)
	if err != nil {
		return nil, err
	}

	c.membershipLevel = level
	return c, nil
}

// ValidEmail reports whether an email address is acceptable: non-blank
// and containing both "@" and ".". Deliberately permissive, no further
// structural checks.
func ValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// SetFirstName replaces the first name, rejecting blank input.
func (c *Customer) SetFirstName(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrFirstNameEmpty
	}
	c.firstName = v
	return nil
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// SetLastName replaces the last name, rejecting blank input.
func (c *Customer) SetLastName(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrLastNameEmpty
	}
	c.lastName = v
	return nil
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// SetEmail replaces the email address, rejecting input that fails
// ValidEmail.
func (c *Customer) SetEmail(v string) error {
	if !ValidEmail(v) {
		return ErrEmailInvalid
	}
	c.email = v
	return nil
}

// RegistrationDate returns the time the customer was created.
func (c *Customer) RegistrationDate() time.Time {
	return c.registrationDate
}

// MembershipLevel returns the current membership level.
func (c *Customer) MembershipLevel() MembershipLevel {
	return c.membershipLevel
}

// SetMembershipLevel assigns the membership level directly, without
// validation.
func (c *Customer) SetMembershipLevel(level MembershipLevel) {
	c.membershipLevel = level
}

// FullName returns the first and last name joined with a space.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// YearsSinceRegistration returns the current year minus the
// registration year.
func (c *Customer) YearsSinceRegistration() int {
	return time.Now().Year() - c.registrationDate.Year()
}

// IsPremiumMember reports whether the customer is Gold or Platinum.
func (c *Customer) IsPremiumMember() bool {
	return c.membershipLevel == MembershipGold || c.membershipLevel == MembershipPlatinum
}

// AddOrder appends an order to the customer. The order must be non-nil
// and the customer must hold fewer than MaxOrdersPerDay orders.
func (c *Customer) AddOrder(order *orders.Order) error {
	if order == nil {
		return ErrOrderRequired
	}

	if len(c.orders) >= MaxOrdersPerDay {
		return ErrOrderLimitExceeded
	}

	c.orders = append(c.orders, order)
	return nil
}

// Orders returns a copy of the order list in insertion order.
func (c *Customer) Orders() []*orders.Order {
	result := make([]*orders.Order, len(c.orders))
	copy(result, c.orders)
	return result
}

// OrderCount returns the number of orders the customer holds.
func (c *Customer) OrderCount() int {
	return len(c.orders)
}

// FindOrder returns the held order with the given id.
func (c *Customer) FindOrder(orderID int) (*orders.Order, error) {
	for _, order := range c.orders {
		if order.ID() == orderID {
			return order, nil
		}
	}
	return nil, orders.NewOrderNotFound(orderID)
}

// TotalSpent returns the sum of the total amount over all orders, zero
// when the customer holds none.
func (c *Customer) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, order := range c.orders {
		total = total.Add(order.TotalAmount())
	}
	return total
}

// OrdersByStatus returns the orders matching the given status, most
// recent first. Equal timestamps keep their insertion order.
func (c *Customer) OrdersByStatus(status orders.Status) []*orders.Order {
	result := make([]*orders.Order, 0)
	for _, order := range c.orders {
		if order.Status() == status {
			result = append(result, order)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date().After(result[j].Date())
	})

	return result
}

// DiscountRate returns the discount fraction for the current membership
// level, zero for a level outside the known set.
func (c *Customer) DiscountRate() decimal.Decimal {
	if rate, ok := discountRates[c.membershipLevel]; ok {
		return rate
	}
	return decimal.Zero
}

// UpgradeMembership advances the membership one level up the ladder.
// Upgrading a Platinum customer is a no-op.
func (c *Customer) UpgradeMembership() {
	if next, ok := nextLevel[c.membershipLevel]; ok {
		c.membershipLevel = next
	}
}

// Report returns a multi-line text report of the customer's state.
func (c *Customer) Report() string {
	var b strings.Builder

	b.WriteString("=== Customer Report ===\n")
	fmt.Fprintf(&b, "Name: %s\n", c.FullName())
	fmt.Fprintf(&b, "Email: %s\n", c.email)
	fmt.Fprintf(&b, "Membership: %s\n", c.membershipLevel)
	fmt.Fprintf(&b, "Member Since: %s\n", c.registrationDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "Years Active: %d\n", c.YearsSinceRegistration())
	fmt.Fprintf(&b, "Total Orders: %d\n", len(c.orders))
	fmt.Fprintf(&b, "Total Spent: $%s\n", c.TotalSpent().StringFixed(2))
	fmt.Fprintf(&b, "Discount Rate: %s%%\n", c.DiscountRate().Mul(decimal.NewFromInt(100)).StringFixed(0))

	return b.String()
}

// String implements fmt.Stringer.
func (c *Customer) String() string {
	return fmt.Sprintf("Customer: %s (%s)", c.FullName(), c.email)
}
