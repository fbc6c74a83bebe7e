package model

// TableStatus is the occupancy state of a table.
type TableStatus int

const (
	TableFree TableStatus = iota
	TableOccupied
	TableReserved
)

func (s TableStatus) String() string {
	switch s {
	case TableFree:
		return "free"
	case TableOccupied:
		return "occupied"
	case TableReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// OrderStatus is the service state of an order. It only moves forward.
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderServed
)

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "pending"
	case OrderServed:
		return "served"
	default:
		return "unknown"
	}
}
