package model

import (
	"strings"
	"sync/atomic"
)

// Sequence hands out strictly increasing order ids starting at 1.
// The zero value is ready to use and safe for concurrent callers.
type Sequence struct {
	last atomic.Int64
}

// Next returns the next id. Ids are never reused.
func (s *Sequence) Next() int {
	return int(s.last.Add(1))
}

// NewOrder creates a pending order numbered with the next id.
func (s *Sequence) NewOrder() *Order {
	o := newOrder(s.Next())
	o.issuer = s
	return o
}

// Issued reports whether o was created by this sequence.
func (s *Sequence) Issued(o *Order) bool {
	return o != nil && o.issuer == s
}

// Order is a single round of dishes requested at a table.
type Order struct {
	id     int
	dishes []*Dish
	status OrderStatus
	issuer *Sequence
	table  *Table
}

// newOrder creates an empty pending order. Ids are only assigned by a Sequence.
func newOrder(id int) *Order {
	return &Order{
		id:     id,
		dishes: []*Dish{},
		status: OrderPending,
	}
}

// ID returns the order id.
func (o *Order) ID() int { return o.id }

// Status returns the current status.
func (o *Order) Status() OrderStatus { return o.status }

// TableNumber returns the number of the table the order was added to.
func (o *Order) TableNumber() (int, bool) {
	if o.table == nil {
		return 0, false
	}
	return o.table.number, true
}

// IsServed reports whether the order has been closed.
func (o *Order) IsServed() bool { return o.status == OrderServed }

// Dishes returns the dishes in insertion order. The slice is a copy; the dishes are shared.
func (o *Order) Dishes() []*Dish {
	out := make([]*Dish, len(o.dishes))
	copy(out, o.dishes)
	return out
}

// AddDish appends a dish to the order.
func (o *Order) AddDish(d *Dish) {
	o.dishes = append(o.dishes, d)
}

// RemoveDish drops every dish named name and returns how many were removed.
func (o *Order) RemoveDish(name string) int {
	kept := o.dishes[:0]
	for _, d := range o.dishes {
		if d.Name() != name {
			kept = append(kept, d)
		}
	}
	removed := len(o.dishes) - len(kept)
	for i := len(kept); i < len(o.dishes); i++ {
		o.dishes[i] = nil
	}
	o.dishes = kept
	return removed
}

// TotalPrice sums the prices of the current dishes.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, d := range o.dishes {
		total += d.Price()
	}
	return total
}

// TotalPreparationTime sums the preparation times of the current dishes, in minutes.
func (o *Order) TotalPreparationTime() int {
	total := 0
	for _, d := range o.dishes {
		total += d.PreparationTime()
	}
	return total
}

// Close marks the order as served. It reports whether the status changed.
func (o *Order) Close() bool {
	if o.status == OrderServed {
		return false
	}
	o.status = OrderServed
	return true
}

// String lists each dish on its own line followed by the status line.
func (o *Order) String() string {
	var b strings.Builder
	for _, d := range o.dishes {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	b.WriteString("Status: ")
	b.WriteString(o.status.String())
	return b.String()
}
