// Package service contains the business logic for the restaurant service.
package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/restaurant-service/internal/domain/dto"
	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/guttosm/restaurant-service/internal/metrics"
	"github.com/rs/zerolog"
)

var (
	// ErrTableNotFound is returned when a table number is outside the restaurant's layout.
	ErrTableNotFound = errors.New("table not found")
	// ErrInvalidTableLayout is returned when tables are missing or not numbered 1..N in order.
	ErrInvalidTableLayout = errors.New("invalid table layout")
	// ErrNilOrder is returned when PlaceOrder receives no order.
	ErrNilOrder = errors.New("order is nil")
	// ErrForeignOrder is returned when PlaceOrder receives an order not created by the service's sequence.
	ErrForeignOrder = errors.New("order was not issued by this restaurant")
)

// Table transition names used in logs and metrics.
const (
	TransitionOccupy     = "occupy"
	TransitionSeat       = "seat_reservation"
	TransitionReserve    = "reserve"
	TransitionRelease    = "release"
	TransitionCloseTable = "close"
)

// Restaurant defines the front-of-house operations.
//
// Commands whose precondition does not hold are no-ops: they return false
// and a nil error. An error is only returned for an unknown table number.
type Restaurant interface {
	NewOrder() *model.Order
	PlaceOrder(tableNumber int, order *model.Order) (bool, error)
	CloseLastOrder(tableNumber int) (bool, error)
	CloseOrderByID(tableNumber, orderID int) (bool, error)
	CloseTable(tableNumber int) (bool, error)

	OccupyTable(tableNumber int) (bool, error)
	OccupyFromReservation(tableNumber int) (bool, error)
	ReserveTable(tableNumber int) (bool, error)
	ReleaseTable(tableNumber int) (bool, error)

	// ListOrderedDishNames returns every ordered dish name; ok is false when nothing was ordered.
	ListOrderedDishNames() (names []string, ok bool)
	// CountDish returns how often name was ordered; ok is false when it never was.
	CountDish(name string) (count int, ok bool)
	// MostOrderedDishes returns every name tied for the highest count; ok is false when nothing was ordered.
	MostOrderedDishes() (names []string, ok bool)

	Table(tableNumber int) (*model.Table, error)
	Snapshot() []dto.TableSummary
	Report() dto.ReportSummary
}

// Option configures a RestaurantService.
type Option func(*RestaurantService)

// RestaurantService coordinates a fixed set of tables.
// Coordinator operations are serialized; entities reached through Table or
// Tables must not be mutated concurrently with them.
type RestaurantService struct {
	mu       sync.RWMutex
	tables   []*model.Table
	sequence *model.Sequence
	logger   zerolog.Logger
	recorder metrics.Recorder
	clock    func() time.Time
}

// NewRestaurantService creates a service over tables numbered 1..N in order.
func NewRestaurantService(tables []*model.Table, opts ...Option) (*RestaurantService, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables", ErrInvalidTableLayout)
	}
	for i, t := range tables {
		if t == nil || t.Number() != i+1 {
			return nil, fmt.Errorf("%w: position %d must hold table %d", ErrInvalidTableLayout, i+1, i+1)
		}
	}

	s := &RestaurantService{
		tables:   make([]*model.Table, len(tables)),
		sequence: &model.Sequence{},
		logger:   zerolog.Nop(),
		recorder: metrics.Nop{},
		clock:    time.Now,
	}
	copy(s.tables, tables)

	for _, opt := range opts {
		opt(s)
	}

	s.recorder.OccupiedTables(s.countOccupied())
	return s, nil
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *RestaurantService) {
		s.logger = logger
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *RestaurantService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithSequence shares an order id sequence, e.g. across service instances in one process.
func WithSequence(seq *model.Sequence) Option {
	return func(s *RestaurantService) {
		if seq != nil {
			s.sequence = seq
		}
	}
}

// WithClock overrides the time source used for reports.
func WithClock(clock func() time.Time) Option {
	return func(s *RestaurantService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewOrder returns an empty pending order with the next id.
func (s *RestaurantService) NewOrder() *model.Order {
	return s.sequence.NewOrder()
}

// PlaceOrder attaches order to the table only when the table is occupied.
// An order belongs to a single table; placing it again is a no-op.
func (s *RestaurantService) PlaceOrder(tableNumber int, order *model.Order) (bool, error) {
	if order == nil {
		return false, ErrNilOrder
	}
	if !s.sequence.Issued(order) {
		return false, fmt.Errorf("%w: order %d", ErrForeignOrder, order.ID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableNumber)
	if err != nil {
		return false, err
	}

	dishes := len(order.Dishes())
	if owner, ok := order.TableNumber(); ok {
		s.logger.Info().
			Int("table", tableNumber).
			Int("order_id", order.ID()).
			Int("owner_table", owner).
			Msg("order not placed: already placed")
		s.recorder.OrderPlaced(false, dishes)
		return false, nil
	}
	if t.Status() != model.TableOccupied {
		s.logger.Info().
			Int("table", tableNumber).
			Int("order_id", order.ID()).
			Str("table_status", t.Status().String()).
			Msg("order not placed: table is not occupied")
		s.recorder.OrderPlaced(false, dishes)
		return false, nil
	}

	t.AddOrder(order)
	s.logger.Debug().
		Int("table", tableNumber).
		Int("order_id", order.ID()).
		Int("dishes", dishes).
		Msg("order placed")
	s.recorder.OrderPlaced(true, dishes)
	return true, nil
}

// CloseLastOrder marks the most recently added order of the table as served.
func (s *RestaurantService) CloseLastOrder(tableNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableNumber)
	if err != nil {
		return false, err
	}

	last, ok := t.LastOrder()
	if !ok {
		s.logger.Info().Int("table", tableNumber).Msg("no order to close")
		s.recorder.OrderClosed(false)
		return false, nil
	}
	return s.recordClose(t, last.ID(), last.Close()), nil
}

// CloseOrderByID marks the order with orderID on the table as served.
func (s *RestaurantService) CloseOrderByID(tableNumber, orderID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableNumber)
	if err != nil {
		return false, err
	}
	return s.recordClose(t, orderID, t.CloseOrder(orderID)), nil
}

func (s *RestaurantService) recordClose(t *model.Table, orderID int, closed bool) bool {
	s.logger.Debug().
		Int("table", t.Number()).
		Int("order_id", orderID).
		Bool("closed", closed).
		Msg("close order")
	s.recorder.OrderClosed(closed)
	return closed
}

// CloseTable frees the table when every order on it has been served.
// A table without orders can always be closed.
func (s *RestaurantService) CloseTable(tableNumber int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableNumber)
	if err != nil {
		return false, err
	}

	if !t.AllServed() {
		s.logger.Info().Int("table", tableNumber).Msg("table not closed: pending orders")
		s.recordTransition(TransitionCloseTable, false)
		return false, nil
	}

	t.Release()
	s.logger.Debug().Int("table", tableNumber).Msg("table closed")
	s.recordTransition(TransitionCloseTable, true)
	return true, nil
}

// OccupyTable seats walk-in guests at a free table.
func (s *RestaurantService) OccupyTable(tableNumber int) (bool, error) {
	return s.transition(tableNumber, TransitionOccupy, (*model.Table).Occupy)
}

// OccupyFromReservation seats guests at a reserved table.
func (s *RestaurantService) OccupyFromReservation(tableNumber int) (bool, error) {
	return s.transition(tableNumber, TransitionSeat, (*model.Table).OccupyFromReservation)
}

// ReserveTable holds a free table for a reservation.
func (s *RestaurantService) ReserveTable(tableNumber int) (bool, error) {
	return s.transition(tableNumber, TransitionReserve, (*model.Table).Reserve)
}

// ReleaseTable frees a table unconditionally, ignoring pending orders.
func (s *RestaurantService) ReleaseTable(tableNumber int) (bool, error) {
	return s.transition(tableNumber, TransitionRelease, (*model.Table).Release)
}

func (s *RestaurantService) transition(tableNumber int, name string, apply func(*model.Table) bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.table(tableNumber)
	if err != nil {
		return false, err
	}

	changed := apply(t)
	event := s.logger.Debug()
	if !changed {
		event = s.logger.Info()
	}
	event.Int("table", tableNumber).
		Str("transition", name).
		Bool("changed", changed).
		Str("status", t.Status().String()).
		Msg("table transition")
	s.recordTransition(name, changed)
	return changed, nil
}

func (s *RestaurantService) recordTransition(name string, changed bool) {
	s.recorder.TableTransition(name, changed)
	s.recorder.OccupiedTables(s.countOccupied())
}

func (s *RestaurantService) countOccupied() int {
	n := 0
	for _, t := range s.tables {
		if t.Status() == model.TableOccupied {
			n++
		}
	}
	return n
}

// ListOrderedDishNames returns all dish names across tables, orders and dishes, in that order.
func (s *RestaurantService) ListOrderedDishNames() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.dishNames()
	if len(names) == 0 {
		return nil, false
	}
	return names, true
}

// CountDish counts exact matches of name among every ordered dish.
func (s *RestaurantService) CountDish(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	s.eachDish(func(d *model.Dish) {
		if d.Name() == name {
			count++
		}
	})
	if count == 0 {
		return 0, false
	}
	return count, true
}

// MostOrderedDishes returns every dish name tied for the highest order count,
// in the order each name was first seen.
func (s *RestaurantService) MostOrderedDishes() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mostFrequent(s.dishNames())
}

// mostFrequent returns the distinct values of names that reach the maximum
// frequency, in first-seen order. It runs in O(len(names)).
func mostFrequent(names []string) ([]string, bool) {
	if len(names) == 0 {
		return nil, false
	}

	counts := make(map[string]int)
	distinct := make([]string, 0)
	for _, n := range names {
		if counts[n] == 0 {
			distinct = append(distinct, n)
		}
		counts[n]++
	}

	highest := 0
	for _, n := range distinct {
		if counts[n] > highest {
			highest = counts[n]
		}
	}

	top := make([]string, 0, 1)
	for _, n := range distinct {
		if counts[n] == highest {
			top = append(top, n)
		}
	}
	return top, true
}

func (s *RestaurantService) dishNames() []string {
	var names []string
	s.eachDish(func(d *model.Dish) {
		names = append(names, d.Name())
	})
	return names
}

func (s *RestaurantService) eachDish(fn func(*model.Dish)) {
	for _, t := range s.tables {
		for _, o := range t.Orders() {
			for _, d := range o.Dishes() {
				fn(d)
			}
		}
	}
}

// Table returns the table with the given number.
func (s *RestaurantService) Table(tableNumber int) (*model.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.table(tableNumber)
}

// Tables returns the tables in number order.
func (s *RestaurantService) Tables() []*model.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

func (s *RestaurantService) table(tableNumber int) (*model.Table, error) {
	if tableNumber < 1 || tableNumber > len(s.tables) {
		return nil, fmt.Errorf("%w: %d", ErrTableNotFound, tableNumber)
	}
	return s.tables[tableNumber-1], nil
}

// Snapshot returns a structured view of every table.
func (s *RestaurantService) Snapshot() []dto.TableSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]dto.TableSummary, 0, len(s.tables))
	for _, t := range s.tables {
		out = append(out, dto.NewTableSummary(t))
	}
	return out
}

// Report runs the reporting queries under a single read lock.
func (s *RestaurantService) Report() dto.ReportSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := s.dishNames()
	top, _ := mostFrequent(names)
	return dto.ReportSummary{
		OrderedDishes: names,
		MostOrdered:   top,
		GeneratedAt:   s.clock(),
	}
}

// String describes every table, separated by blank lines.
func (s *RestaurantService) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parts := make([]string, 0, len(s.tables))
	for _, t := range s.tables {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "\n\n")
}
