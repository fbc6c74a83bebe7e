package dto

import (
	"time"

	"github.com/guttosm/restaurant-service/internal/domain/model"
)

// DishSummary is a read-only view of a dish.
type DishSummary struct {
	Name            string   `json:"name" example:"Pasta"`
	Price           float64  `json:"price" example:"10.5"`
	PreparationTime int      `json:"preparation_time" example:"15"`
	Ingredients     []string `json:"ingredients"`
}

// OrderSummary is a read-only view of an order with its derived totals.
type OrderSummary struct {
	ID                   int           `json:"id" example:"1"`
	Status               string        `json:"status" example:"pending"`
	Dishes               []DishSummary `json:"dishes"`
	TotalPrice           float64       `json:"total_price" example:"21"`
	TotalPreparationTime int           `json:"total_preparation_time" example:"30"`
}

// TableSummary is a read-only view of a table and its orders.
type TableSummary struct {
	Number   int            `json:"number" example:"1"`
	Capacity int            `json:"capacity" example:"4"`
	Status   string         `json:"status" example:"occupied"`
	Orders   []OrderSummary `json:"orders"`
}

// ReportSummary bundles the reporting queries for a single render.
// Nil slices mean nothing has been ordered yet.
type ReportSummary struct {
	OrderedDishes []string  `json:"ordered_dishes,omitempty"`
	MostOrdered   []string  `json:"most_ordered,omitempty"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// NewDishSummary builds a DishSummary from a dish.
func NewDishSummary(d *model.Dish) DishSummary {
	return DishSummary{
		Name:            d.Name(),
		Price:           d.Price(),
		PreparationTime: d.PreparationTime(),
		Ingredients:     d.Ingredients(),
	}
}

// NewOrderSummary builds an OrderSummary from an order.
func NewOrderSummary(o *model.Order) OrderSummary {
	dishes := o.Dishes()
	summary := OrderSummary{
		ID:                   o.ID(),
		Status:               o.Status().String(),
		Dishes:               make([]DishSummary, 0, len(dishes)),
		TotalPrice:           o.TotalPrice(),
		TotalPreparationTime: o.TotalPreparationTime(),
	}
	for _, d := range dishes {
		summary.Dishes = append(summary.Dishes, NewDishSummary(d))
	}
	return summary
}

// NewTableSummary builds a TableSummary from a table.
func NewTableSummary(t *model.Table) TableSummary {
	orders := t.Orders()
	summary := TableSummary{
		Number:   t.Number(),
		Capacity: t.Capacity(),
		Status:   t.Status().String(),
		Orders:   make([]OrderSummary, 0, len(orders)),
	}
	for _, o := range orders {
		summary.Orders = append(summary.Orders, NewOrderSummary(o))
	}
	return summary
}
