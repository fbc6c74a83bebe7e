// Package metrics provides Prometheus metrics collection for the restaurant service.
package metrics

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Result label values.
const (
	ResultApplied = "applied"
	ResultNoop    = "noop"
)

var (
	// OrdersPlacedTotal tracks placeOrder calls by result.
	OrdersPlacedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_orders_placed_total",
			Help: "Total number of orders placed on tables",
		},
		[]string{"result"},
	)

	// OrdersClosedTotal tracks closeOrder calls by result.
	OrdersClosedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_orders_closed_total",
			Help: "Total number of orders marked as served",
		},
		[]string{"result"},
	)

	// TableTransitionsTotal tracks table state transitions by kind and result.
	TableTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_table_transitions_total",
			Help: "Total number of table state transitions",
		},
		[]string{"transition", "result"},
	)

	// DishesOrderedTotal tracks dishes attached to placed orders.
	DishesOrderedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "restaurant_dishes_ordered_total",
			Help: "Total number of dishes in placed orders",
		},
	)

	// OccupiedTables tracks the current number of occupied tables.
	OccupiedTables = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restaurant_occupied_tables",
			Help: "Current number of occupied tables",
		},
	)
)

// Recorder receives domain events worth measuring.
type Recorder interface {
	OrderPlaced(applied bool, dishes int)
	OrderClosed(applied bool)
	TableTransition(transition string, applied bool)
	OccupiedTables(n int)
}

// Prometheus records events on the package-level collectors.
type Prometheus struct{}

// OrderPlaced records a placeOrder outcome.
func (Prometheus) OrderPlaced(applied bool, dishes int) {
	OrdersPlacedTotal.WithLabelValues(result(applied)).Inc()
	if applied {
		DishesOrderedTotal.Add(float64(dishes))
	}
}

// OrderClosed records a closeOrder outcome.
func (Prometheus) OrderClosed(applied bool) {
	OrdersClosedTotal.WithLabelValues(result(applied)).Inc()
}

// TableTransition records a table state change attempt.
func (Prometheus) TableTransition(transition string, applied bool) {
	TableTransitionsTotal.WithLabelValues(transition, result(applied)).Inc()
}

// OccupiedTables sets the occupied tables gauge.
func (Prometheus) OccupiedTables(n int) {
	OccupiedTables.Set(float64(n))
}

// Nop discards every event.
type Nop struct{}

func (Nop) OrderPlaced(bool, int)        {}
func (Nop) OrderClosed(bool)             {}
func (Nop) TableTransition(string, bool) {}
func (Nop) OccupiedTables(int)           {}

// WriteText writes every restaurant_* metric family from the default gatherer
// in the Prometheus text exposition format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "restaurant_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func result(applied bool) string {
	if applied {
		return ResultApplied
	}
	return ResultNoop
}
