// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) OrderPlaced(applied bool, dishes int) {
	m.Called(applied, dishes)
}

func (m *MockRecorder) OrderClosed(applied bool) {
	m.Called(applied)
}

func (m *MockRecorder) TableTransition(transition string, applied bool) {
	m.Called(transition, applied)
}

func (m *MockRecorder) OccupiedTables(n int) {
	m.Called(n)
}
