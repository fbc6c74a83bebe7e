// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/restaurant-service/internal/domain/dto"
	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockRestaurant struct {
	mock.Mock
}

func (m *MockRestaurant) NewOrder() *model.Order {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Order)
}

func (m *MockRestaurant) PlaceOrder(tableNumber int, order *model.Order) (bool, error) {
	args := m.Called(tableNumber, order)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) CloseLastOrder(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) CloseOrderByID(tableNumber, orderID int) (bool, error) {
	args := m.Called(tableNumber, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) CloseTable(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) OccupyTable(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) OccupyFromReservation(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) ReserveTable(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) ReleaseTable(tableNumber int) (bool, error) {
	args := m.Called(tableNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestaurant) ListOrderedDishNames() ([]string, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockRestaurant) CountDish(name string) (int, bool) {
	args := m.Called(name)
	return args.Int(0), args.Bool(1)
}

func (m *MockRestaurant) MostOrderedDishes() ([]string, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockRestaurant) Table(tableNumber int) (*model.Table, error) {
	args := m.Called(tableNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Table), args.Error(1)
}

func (m *MockRestaurant) Snapshot() []dto.TableSummary {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]dto.TableSummary)
}

func (m *MockRestaurant) Report() dto.ReportSummary {
	args := m.Called()
	return args.Get(0).(dto.ReportSummary)
}
