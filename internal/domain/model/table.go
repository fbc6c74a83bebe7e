package model

import (
	"fmt"
	"strings"
)

// Table capacity bounds, inclusive.
const (
	MinTableCapacity = 1
	MaxTableCapacity = 6
)

// Table is a seating unit with a fixed capacity and an occupancy state.
// Transition methods never fail: when the precondition does not hold they
// leave the table unchanged and return false.
type Table struct {
	number   int
	capacity int
	status   TableStatus
	orders   []*Order
}

// NewTable creates a free table with no orders.
func NewTable(number, capacity int) (*Table, error) {
	if number < 1 {
		return nil, newValidationError("number", KeyTableNumberInvalid, number)
	}
	if capacity < MinTableCapacity || capacity > MaxTableCapacity {
		return nil, newValidationError("capacity", KeyTableCapacityInvalid, capacity)
	}
	return &Table{
		number:   number,
		capacity: capacity,
		status:   TableFree,
		orders:   []*Order{},
	}, nil
}

// Number returns the table number.
func (t *Table) Number() int { return t.number }

// Capacity returns the maximum number of guests.
func (t *Table) Capacity() int { return t.capacity }

// Status returns the current occupancy state.
func (t *Table) Status() TableStatus { return t.status }

// Orders returns the table's orders in the order they were added.
func (t *Table) Orders() []*Order {
	out := make([]*Order, len(t.orders))
	copy(out, t.orders)
	return out
}

// Occupy seats walk-in guests: FREE -> OCCUPIED.
func (t *Table) Occupy() bool {
	return t.transition(TableFree, TableOccupied)
}

// OccupyFromReservation seats a reservation: RESERVED -> OCCUPIED.
func (t *Table) OccupyFromReservation() bool {
	return t.transition(TableReserved, TableOccupied)
}

// Reserve holds a free table: FREE -> RESERVED.
func (t *Table) Reserve() bool {
	return t.transition(TableFree, TableReserved)
}

// Release frees the table regardless of its state. It reports whether the status changed.
func (t *Table) Release() bool {
	changed := t.status != TableFree
	t.status = TableFree
	return changed
}

func (t *Table) transition(from, to TableStatus) bool {
	if t.status != from {
		return false
	}
	t.status = to
	return true
}

// AddOrder appends an order and makes the table its owner. An order that
// already belongs to a table is not added. Occupancy is enforced by the caller.
func (t *Table) AddOrder(o *Order) bool {
	if o == nil || o.table != nil {
		return false
	}
	o.table = t
	t.orders = append(t.orders, o)
	return true
}

// LastOrder returns the most recently added order.
func (t *Table) LastOrder() (*Order, bool) {
	if len(t.orders) == 0 {
		return nil, false
	}
	return t.orders[len(t.orders)-1], true
}

// FindOrder returns the order with the given id.
func (t *Table) FindOrder(id int) (*Order, bool) {
	for _, o := range t.orders {
		if o.ID() == id {
			return o, true
		}
	}
	return nil, false
}

// CloseOrder marks the order with the given id as served.
// It returns false when no such order exists or it was already served.
func (t *Table) CloseOrder(id int) bool {
	o, ok := t.FindOrder(id)
	if !ok {
		return false
	}
	return o.Close()
}

// AllServed reports whether every order is served. A table with no orders qualifies.
func (t *Table) AllServed() bool {
	for _, o := range t.orders {
		if !o.IsServed() {
			return false
		}
	}
	return true
}

// String renders "Table N: status" followed by each order's description.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Table %d: %s", t.number, t.status)
	for _, o := range t.orders {
		b.WriteByte('\n')
		b.WriteString(o.String())
	}
	return b.String()
}
