//go:build !integration

package dto

import (
	"encoding/json"
	"testing"

	"github.com/guttosm/restaurant-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableSummary(t *testing.T) {
	table, err := model.NewTable(1, 4)
	require.NoError(t, err)
	table.Occupy()

	dish, err := model.NewDish("Pasta", 10, 15, []string{"pasta", "sauce"})
	require.NoError(t, err)
	seq := &model.Sequence{}
	seq.Next()
	seq.Next()
	order := seq.NewOrder()
	order.AddDish(dish)
	order.AddDish(dish)
	table.AddOrder(order)

	summary := NewTableSummary(table)

	assert.Equal(t, 1, summary.Number)
	assert.Equal(t, 4, summary.Capacity)
	assert.Equal(t, "occupied", summary.Status)
	require.Len(t, summary.Orders, 1)

	o := summary.Orders[0]
	assert.Equal(t, 3, o.ID)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, 20.0, o.TotalPrice)
	assert.Equal(t, 30, o.TotalPreparationTime)
	require.Len(t, o.Dishes, 2)
	assert.Equal(t, []string{"pasta", "sauce"}, o.Dishes[0].Ingredients)
}

func TestTableSummary_JSON(t *testing.T) {
	table, err := model.NewTable(2, 2)
	require.NoError(t, err)

	data, err := json.Marshal(NewTableSummary(table))
	require.NoError(t, err)

	assert.JSONEq(t, `{"number":2,"capacity":2,"status":"free","orders":[]}`, string(data))
}

func TestReportSummary_JSONOmitsEmptyReports(t *testing.T) {
	data, err := json.Marshal(ReportSummary{})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "ordered_dishes")
	assert.NotContains(t, string(data), "most_ordered")
}
