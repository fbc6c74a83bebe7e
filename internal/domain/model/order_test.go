//go:build !integration

package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDish(t *testing.T, name string, price float64, prep int) *Dish {
	t.Helper()
	d, err := NewDish(name, price, prep, []string{"base"})
	require.NoError(t, err)
	return d
}

func TestSequence_Next(t *testing.T) {
	var seq Sequence

	assert.Equal(t, 1, seq.Next())
	assert.Equal(t, 2, seq.Next())

	o := seq.NewOrder()
	assert.Equal(t, 3, o.ID())
	assert.Equal(t, OrderPending, o.Status())
	assert.Empty(t, o.Dishes())
}

func TestSequence_Issued(t *testing.T) {
	var seq, other Sequence

	assert.True(t, seq.Issued(seq.NewOrder()))
	assert.False(t, seq.Issued(other.NewOrder()))
	assert.False(t, seq.Issued(newOrder(1)))
	assert.False(t, seq.Issued(nil))
}

func TestSequence_ConcurrentIDsAreUnique(t *testing.T) {
	var seq Sequence
	const workers, perWorker = 8, 250

	ids := make(chan int, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Equal(t, workers*perWorker+1, seq.Next())
}

func TestOrder_Totals(t *testing.T) {
	o := newOrder(1)
	assert.Equal(t, 0.0, o.TotalPrice())
	assert.Equal(t, 0, o.TotalPreparationTime())

	o.AddDish(mustDish(t, "Pasta", 10.0, 15))
	o.AddDish(mustDish(t, "Salad", 4.5, 5))

	assert.InDelta(t, 14.5, o.TotalPrice(), 1e-9)
	assert.Equal(t, 20, o.TotalPreparationTime())
}

func TestOrder_RemoveDish(t *testing.T) {
	tests := []struct {
		name            string
		dishes          []string
		remove          string
		expectedRemoved int
		expectedNames   []string
	}{
		{
			name:            "removes every match",
			dishes:          []string{"Pizza", "Salad", "Pizza", "Pizza"},
			remove:          "Pizza",
			expectedRemoved: 3,
			expectedNames:   []string{"Salad"},
		},
		{
			name:            "no match is a no-op",
			dishes:          []string{"Pizza", "Salad"},
			remove:          "Soup",
			expectedRemoved: 0,
			expectedNames:   []string{"Pizza", "Salad"},
		},
		{
			name:            "match is exact",
			dishes:          []string{"pizza", "Pizza"},
			remove:          "Pizza",
			expectedRemoved: 1,
			expectedNames:   []string{"pizza"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrder(1)
			for _, n := range tt.dishes {
				o.AddDish(mustDish(t, n, 5, 5))
			}

			assert.Equal(t, tt.expectedRemoved, o.RemoveDish(tt.remove))

			names := make([]string, 0, len(tt.expectedNames))
			for _, d := range o.Dishes() {
				names = append(names, d.Name())
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestOrder_CloseIsIdempotent(t *testing.T) {
	o := newOrder(7)
	assert.False(t, o.IsServed())

	assert.True(t, o.Close())
	assert.Equal(t, OrderServed, o.Status())

	assert.False(t, o.Close())
	assert.Equal(t, OrderServed, o.Status())
}

func TestOrder_String(t *testing.T) {
	o := newOrder(1)
	assert.Equal(t, "Status: pending", o.String())

	d, err := NewDish("Pasta", 10.0, 15, []string{"pasta", "sauce"})
	require.NoError(t, err)
	o.AddDish(d)
	o.AddDish(mustDish(t, "Bread", 1.5, 2))
	o.Close()

	expected := "Pasta (15 min.) -> 10.00€ (pasta and sauce)\n" +
		"Bread (2 min.) -> 1.50€ (base)\n" +
		"Status: served"
	assert.Equal(t, expected, o.String())
}
