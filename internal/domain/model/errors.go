package model

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// Message keys for validation failures. Translated texts live in the i18n catalogs.
const (
	KeyDishNameRequired     = "error.validation.dish_name"
	KeyDishPriceInvalid     = "error.validation.dish_price"
	KeyDishPrepTimeInvalid  = "error.validation.dish_preparation_time"
	KeyDishIngredientsEmpty = "error.validation.dish_ingredients"
	KeyIngredientRequired   = "error.validation.ingredient"
	KeyTableCapacityInvalid = "error.validation.table_capacity"
	KeyTableNumberInvalid   = "error.validation.table_number"
)

// ValidationError reports a domain value rejected at construction or mutation.
type ValidationError struct {
	// Field is the attribute that failed validation (e.g. "price").
	Field string
	// Key identifies the failure and is used for translated messages.
	Key string
	// Value is the rejected input.
	Value interface{}
}

func newValidationError(field, key string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Key: key, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Key, e.Value)
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
