// Package i18n provides internationalization support for the restaurant service.
package i18n

import "github.com/guttosm/restaurant-service/internal/domain/model"

// Validation message keys, shared with the domain model.
const (
	ErrKeyDishName        = model.KeyDishNameRequired
	ErrKeyDishPrice       = model.KeyDishPriceInvalid
	ErrKeyDishPrepTime    = model.KeyDishPrepTimeInvalid
	ErrKeyDishIngredients = model.KeyDishIngredientsEmpty
	ErrKeyIngredient      = model.KeyIngredientRequired
	ErrKeyTableCapacity   = model.KeyTableCapacityInvalid
	ErrKeyTableNumber     = model.KeyTableNumberInvalid
)

// Command error keys.
const (
	// ErrKeyUnknownCommand indicates an unrecognized command.
	ErrKeyUnknownCommand = "error.unknown_command"
	// ErrKeyUsage prefixes a command usage line.
	ErrKeyUsage = "error.usage"
	// ErrKeyTableNotFound indicates a table number outside the layout.
	ErrKeyTableNotFound = "error.table_not_found"
	// ErrKeyInvalidNumber indicates an argument that is not a number.
	ErrKeyInvalidNumber = "error.invalid_number"
	// ErrKeyMalformedDish indicates a dish spec that cannot be parsed.
	ErrKeyMalformedDish = "error.malformed_dish"
	// ErrKeyInternalError indicates an unexpected failure.
	ErrKeyInternalError = "error.internal_error"
)

// Informational message keys.
const (
	MsgKeyNothingChanged = "msg.nothing_changed"
	MsgKeyOrderPlaced    = "msg.order_placed"
	MsgKeyOrderNotPlaced = "msg.order_not_placed"
	MsgKeyOrderClosed    = "msg.order_closed"
	MsgKeyTableUpdated   = "msg.table_updated"
	MsgKeyTableNotClosed = "msg.table_not_closed"
	MsgKeyNothingOrdered = "msg.nothing_ordered"
	MsgKeyNeverOrdered   = "msg.never_ordered"
	MsgKeyDishCount      = "msg.dish_count"
	MsgKeyMostOrdered    = "msg.most_ordered"
	MsgKeyTableRow       = "msg.table_row"
	MsgKeyCommands       = "msg.commands"
	MsgKeyMetricsOff     = "msg.metrics_disabled"
	MsgKeyGoodbye        = "msg.goodbye"
)
