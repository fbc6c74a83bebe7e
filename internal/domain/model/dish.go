// Package model defines the core domain entities for the restaurant service.
package model

import (
	"fmt"
	"strings"
)

// MinPreparationTime is the exclusive lower bound for a dish's preparation time, in minutes.
const MinPreparationTime = 1

// Dish is a menu item instance attached to a single order.
// A Dish is always valid: every mutator validates before assigning.
type Dish struct {
	name            string
	price           float64
	preparationTime int
	ingredients     []string
}

// NewDish creates a validated Dish. The ingredients slice is copied.
func NewDish(name string, price float64, preparationTime int, ingredients []string) (*Dish, error) {
	if len(ingredients) == 0 {
		return nil, newValidationError("ingredients", KeyDishIngredientsEmpty, ingredients)
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validatePreparationTime(preparationTime); err != nil {
		return nil, err
	}
	for _, ing := range ingredients {
		if err := validateIngredient(ing); err != nil {
			return nil, err
		}
	}

	d := &Dish{
		name:            name,
		price:           price,
		preparationTime: preparationTime,
		ingredients:     make([]string, len(ingredients)),
	}
	copy(d.ingredients, ingredients)
	return d, nil
}

// Name returns the dish name.
func (d *Dish) Name() string { return d.name }

// Price returns the dish price.
func (d *Dish) Price() float64 { return d.price }

// PreparationTime returns the preparation time in minutes.
func (d *Dish) PreparationTime() int { return d.preparationTime }

// Ingredients returns a copy of the ingredient list in insertion order.
func (d *Dish) Ingredients() []string {
	out := make([]string, len(d.ingredients))
	copy(out, d.ingredients)
	return out
}

// SetName replaces the name, leaving the dish untouched on error.
func (d *Dish) SetName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	d.name = name
	return nil
}

// SetPrice replaces the price, leaving the dish untouched on error.
func (d *Dish) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	d.price = price
	return nil
}

// SetPreparationTime replaces the preparation time, leaving the dish untouched on error.
func (d *Dish) SetPreparationTime(minutes int) error {
	if err := validatePreparationTime(minutes); err != nil {
		return err
	}
	d.preparationTime = minutes
	return nil
}

// AddIngredient appends an ingredient to the end of the list.
func (d *Dish) AddIngredient(ingredient string) error {
	if err := validateIngredient(ingredient); err != nil {
		return err
	}
	d.ingredients = append(d.ingredients, ingredient)
	return nil
}

// String renders the dish as "Name (15 min.) -> 10.00€ (a, b and c)".
func (d *Dish) String() string {
	return fmt.Sprintf("%s (%d min.) -> %.2f€ (%s)", d.name, d.preparationTime, d.price, JoinWithAnd(d.ingredients))
}

// JoinWithAnd joins items with commas and a final "and": "a, b and c".
func JoinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError("name", KeyDishNameRequired, name)
	}
	return nil
}

func validatePrice(price float64) error {
	// NaN fails every comparison, so test the accepted range directly.
	if !(price > 0) {
		return newValidationError("price", KeyDishPriceInvalid, price)
	}
	return nil
}

func validatePreparationTime(minutes int) error {
	if minutes <= MinPreparationTime {
		return newValidationError("preparation_time", KeyDishPrepTimeInvalid, minutes)
	}
	return nil
}

func validateIngredient(ingredient string) error {
	if strings.TrimSpace(ingredient) == "" {
		return newValidationError("ingredient", KeyIngredientRequired, ingredient)
	}
	return nil
}
