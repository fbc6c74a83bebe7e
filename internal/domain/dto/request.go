// Package dto defines Data Transfer Objects exchanged between the front end
// and the restaurant service.
//
// DTOs decouple presentation from the domain model: requests are parsed
// from user input and turned into validated entities, summaries are
// read-only views that can be printed or serialized.
package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guttosm/restaurant-service/internal/domain/model"
)

// Dish spec separators: "name:price:minutes:ing1,ing2".
const (
	fieldSeparator      = ":"
	ingredientSeparator = ","
)

// ErrMalformedDishSpec is returned when a dish spec cannot be parsed.
var ErrMalformedDishSpec = errors.New("malformed dish spec, expected name:price:minutes:ingredient[,ingredient...]")

// DishRequest carries the raw attributes of a dish to be ordered.
type DishRequest struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	PreparationTime int      `json:"preparation_time"`
	Ingredients     []string `json:"ingredients"`
}

// ParseDishRequest parses "name:price:minutes:ing1,ing2" into a DishRequest.
// Only the syntax is checked here; domain rules are enforced by ToDish.
func ParseDishRequest(spec string) (DishRequest, error) {
	parts := strings.Split(spec, fieldSeparator)
	if len(parts) != 4 {
		return DishRequest{}, fmt.Errorf("%w: %q", ErrMalformedDishSpec, spec)
	}

	price, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return DishRequest{}, fmt.Errorf("%w: price %q", ErrMalformedDishSpec, parts[1])
	}
	minutes, err := strconv.Atoi(parts[2])
	if err != nil {
		return DishRequest{}, fmt.Errorf("%w: minutes %q", ErrMalformedDishSpec, parts[2])
	}

	var ingredients []string
	if parts[3] != "" {
		ingredients = strings.Split(parts[3], ingredientSeparator)
	}

	return DishRequest{
		Name:            parts[0],
		Price:           price,
		PreparationTime: minutes,
		Ingredients:     ingredients,
	}, nil
}

// ToDish validates the request and builds the dish.
func (r DishRequest) ToDish() (*model.Dish, error) {
	return model.NewDish(r.Name, r.Price, r.PreparationTime, r.Ingredients)
}

// PlaceOrderRequest is an order for a table made of one or more dishes.
type PlaceOrderRequest struct {
	TableNumber int           `json:"table_number"`
	Dishes      []DishRequest `json:"dishes"`
}

// ErrNoDishes is returned when an order request lists no dishes.
var ErrNoDishes = errors.New("an order needs at least one dish")

// Validate checks the request shape. Dish contents are validated by BuildDishes.
func (r *PlaceOrderRequest) Validate() error {
	if r.TableNumber < 1 {
		return fmt.Errorf("table_number: must be a positive integer (got %d)", r.TableNumber)
	}
	if len(r.Dishes) == 0 {
		return ErrNoDishes
	}
	return nil
}

// BuildDishes converts every dish request, stopping at the first invalid one.
func (r *PlaceOrderRequest) BuildDishes() ([]*model.Dish, error) {
	dishes := make([]*model.Dish, 0, len(r.Dishes))
	for _, dr := range r.Dishes {
		d, err := dr.ToDish()
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}
