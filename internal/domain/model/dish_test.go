//go:build !integration

package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDish(t *testing.T) {
	tests := []struct {
		name        string
		dishName    string
		price       float64
		prepTime    int
		ingredients []string
		expectedKey string
	}{
		{
			name:        "valid dish",
			dishName:    "Pasta",
			price:       10.0,
			prepTime:    15,
			ingredients: []string{"pasta", "sauce"},
		},
		{
			name:        "blank name",
			dishName:    "   ",
			price:       10.0,
			prepTime:    15,
			ingredients: []string{"pasta"},
			expectedKey: KeyDishNameRequired,
		},
		{
			name:        "zero price",
			dishName:    "Pasta",
			price:       0,
			prepTime:    15,
			ingredients: []string{"pasta"},
			expectedKey: KeyDishPriceInvalid,
		},
		{
			name:        "negative price",
			dishName:    "Pasta",
			price:       -2.5,
			prepTime:    15,
			ingredients: []string{"pasta"},
			expectedKey: KeyDishPriceInvalid,
		},
		{
			name:        "NaN price",
			dishName:    "Pasta",
			price:       math.NaN(),
			prepTime:    15,
			ingredients: []string{"pasta"},
			expectedKey: KeyDishPriceInvalid,
		},
		{
			name:        "preparation time of one minute",
			dishName:    "Pasta",
			price:       10.0,
			prepTime:    1,
			ingredients: []string{"pasta"},
			expectedKey: KeyDishPrepTimeInvalid,
		},
		{
			name:        "no ingredients",
			dishName:    "Pasta",
			price:       10.0,
			prepTime:    15,
			ingredients: nil,
			expectedKey: KeyDishIngredientsEmpty,
		},
		{
			name:        "blank ingredient",
			dishName:    "Pasta",
			price:       10.0,
			prepTime:    15,
			ingredients: []string{"pasta", ""},
			expectedKey: KeyIngredientRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dish, err := NewDish(tt.dishName, tt.price, tt.prepTime, tt.ingredients)
			if tt.expectedKey == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.dishName, dish.Name())
				assert.Equal(t, tt.price, dish.Price())
				assert.Equal(t, tt.prepTime, dish.PreparationTime())
				assert.Equal(t, tt.ingredients, dish.Ingredients())
				return
			}

			assert.Nil(t, dish)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expectedKey, verr.Key)
		})
	}
}

func TestNewDish_CopiesIngredients(t *testing.T) {
	ingredients := []string{"dough", "tomato"}
	dish, err := NewDish("Pizza", 9.5, 12, ingredients)
	require.NoError(t, err)

	ingredients[0] = "changed"
	assert.Equal(t, []string{"dough", "tomato"}, dish.Ingredients())

	got := dish.Ingredients()
	got[1] = "changed"
	assert.Equal(t, []string{"dough", "tomato"}, dish.Ingredients())
}

func TestDish_Setters(t *testing.T) {
	newDish := func(t *testing.T) *Dish {
		d, err := NewDish("Soup", 6.0, 10, []string{"water"})
		require.NoError(t, err)
		return d
	}

	t.Run("valid updates are applied", func(t *testing.T) {
		d := newDish(t)
		require.NoError(t, d.SetName("Broth"))
		require.NoError(t, d.SetPrice(7.25))
		require.NoError(t, d.SetPreparationTime(20))

		assert.Equal(t, "Broth", d.Name())
		assert.Equal(t, 7.25, d.Price())
		assert.Equal(t, 20, d.PreparationTime())
	})

	t.Run("invalid updates leave the dish unchanged", func(t *testing.T) {
		d := newDish(t)

		assert.ErrorIs(t, d.SetName(""), ErrValidation)
		assert.ErrorIs(t, d.SetPrice(0), ErrValidation)
		assert.ErrorIs(t, d.SetPreparationTime(1), ErrValidation)

		assert.Equal(t, "Soup", d.Name())
		assert.Equal(t, 6.0, d.Price())
		assert.Equal(t, 10, d.PreparationTime())
	})
}

func TestDish_AddIngredient(t *testing.T) {
	d, err := NewDish("Salad", 5.0, 5, []string{"lettuce", "tomato"})
	require.NoError(t, err)

	require.NoError(t, d.AddIngredient("onion"))
	assert.Equal(t, []string{"lettuce", "tomato", "onion"}, d.Ingredients())
	assert.Equal(t, "Salad (5 min.) -> 5.00€ (lettuce, tomato and onion)", d.String())

	err = d.AddIngredient("  ")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, d.Ingredients(), 3)
}

func TestDish_String(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		expected    string
	}{
		{
			name:        "single ingredient",
			ingredients: []string{"pasta"},
			expected:    "Pasta (15 min.) -> 10.00€ (pasta)",
		},
		{
			name:        "two ingredients",
			ingredients: []string{"pasta", "sauce"},
			expected:    "Pasta (15 min.) -> 10.00€ (pasta and sauce)",
		},
		{
			name:        "three ingredients",
			ingredients: []string{"pasta", "sauce", "cheese"},
			expected:    "Pasta (15 min.) -> 10.00€ (pasta, sauce and cheese)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDish("Pasta", 10, 15, tt.ingredients)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.String())
		})
	}
}

func TestJoinWithAnd(t *testing.T) {
	assert.Equal(t, "", JoinWithAnd(nil))
	assert.Equal(t, "a", JoinWithAnd([]string{"a"}))
	assert.Equal(t, "a and b", JoinWithAnd([]string{"a", "b"}))
	assert.Equal(t, "a, b, c and d", JoinWithAnd([]string{"a", "b", "c", "d"}))
}

func TestValidationError_Error(t *testing.T) {
	var err error = &ValidationError{Field: "price", Key: KeyDishPriceInvalid, Value: -1.0}
	assert.Equal(t, "price: error.validation.dish_price (got -1)", err.Error())

	_, err = NewTable(1, 0)
	require.Error(t, err)
	assert.Equal(t, "capacity: error.validation.table_capacity (got 0)", err.Error())
}
