// Package i18n provides internationalization support for the restaurant service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/guttosm/restaurant-service/internal/domain/model"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Translatef translates key and formats it with args.
func (t *Translator) Translatef(key, locale string, args ...interface{}) string {
	return fmt.Sprintf(t.Translate(key, locale), args...)
}

// TranslateError renders err for users. Validation errors are translated
// with the rejected value; other errors are returned as-is.
func (t *Translator) TranslateError(err error, locale string) string {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("%s: %s (%v)", verr.Field, t.Translate(verr.Key, locale), verr.Value)
	}
	return err.Error()
}

// ParseLocale extracts a supported locale from a tag such as "es_ES.UTF-8"
// or "es-ES". Unsupported or empty tags fall back to DefaultLocale.
func ParseLocale(tag string) string {
	lang := strings.TrimSpace(tag)
	if idx := strings.IndexAny(lang, "_-."); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)
	if _, ok := getDefaultMessages()[lang]; ok {
		return lang
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Validation messages
			ErrKeyDishName:        "every dish must have a name",
			ErrKeyDishPrice:       "a dish price must be greater than zero",
			ErrKeyDishPrepTime:    "preparation time must be greater than 1 minute",
			ErrKeyDishIngredients: "a dish must have at least one ingredient",
			ErrKeyIngredient:      "an ingredient cannot be empty",
			ErrKeyTableCapacity:   "table capacity must be between 1 and 6 guests",
			ErrKeyTableNumber:     "table number must be a positive integer",

			// Command errors
			ErrKeyUnknownCommand: "unknown command %q, type help",
			ErrKeyUsage:          "usage: %s",
			ErrKeyTableNotFound:  "table %d does not exist",
			ErrKeyInvalidNumber:  "%q is not a number",
			ErrKeyMalformedDish:  "cannot read dish %q, expected name:price:minutes:ingredient,ingredient",
			ErrKeyInternalError:  "an unexpected error occurred",

			// Informational messages
			MsgKeyNothingChanged: "nothing changed",
			MsgKeyOrderPlaced:    "order %d placed on table %d",
			MsgKeyOrderNotPlaced: "order not placed: table %d is not occupied",
			MsgKeyOrderClosed:    "order served",
			MsgKeyTableUpdated:   "table %d is now %s",
			MsgKeyTableNotClosed: "table %d still has pending orders",
			MsgKeyNothingOrdered: "no dishes have been ordered",
			MsgKeyNeverOrdered:   "%s has never been ordered",
			MsgKeyDishCount:      "%s ordered %d time(s)",
			MsgKeyMostOrdered:    "most ordered: %s",
			MsgKeyTableRow:       "table %d (%d seats): %s, %d order(s)",
			MsgKeyCommands:       "commands:",
			MsgKeyMetricsOff:     "metrics are disabled",
			MsgKeyGoodbye:        "bye",
		},
		"es": {
			// Validation messages
			ErrKeyDishName:        "todos los platos deben tener nombre",
			ErrKeyDishPrice:       "un plato no puede tener un precio negativo o cero",
			ErrKeyDishPrepTime:    "el tiempo de preparación no puede ser igual o inferior a 1",
			ErrKeyDishIngredients: "el plato debe tener al menos 1 ingrediente",
			ErrKeyIngredient:      "un ingrediente no puede ser vacío",
			ErrKeyTableCapacity:   "una mesa no puede tener menos de 1 comensal o más de 6 comensales",
			ErrKeyTableNumber:     "el número de mesa debe ser un entero positivo",

			// Command errors
			ErrKeyUnknownCommand: "comando desconocido %q, escribe help",
			ErrKeyUsage:          "uso: %s",
			ErrKeyTableNotFound:  "la mesa %d no existe",
			ErrKeyInvalidNumber:  "%q no es un número",
			ErrKeyMalformedDish:  "no se puede leer el plato %q, se esperaba nombre:precio:minutos:ingrediente,ingrediente",
			ErrKeyInternalError:  "ocurrió un error inesperado",

			// Informational messages
			MsgKeyNothingChanged: "no ha cambiado nada",
			MsgKeyOrderPlaced:    "pedido %d añadido a la mesa %d",
			MsgKeyOrderNotPlaced: "pedido no añadido: la mesa %d no está ocupada",
			MsgKeyOrderClosed:    "pedido servido",
			MsgKeyTableUpdated:   "la mesa %d está ahora %s",
			MsgKeyTableNotClosed: "la mesa %d aún tiene pedidos pendientes",
			MsgKeyNothingOrdered: "no se ha pedido ningún plato",
			MsgKeyNeverOrdered:   "%s no se ha pedido nunca",
			MsgKeyDishCount:      "%s pedido %d vez/veces",
			MsgKeyMostOrdered:    "más pedidos: %s",
			MsgKeyTableRow:       "mesa %d (%d comensales): %s, %d pedido(s)",
			MsgKeyCommands:       "comandos:",
			MsgKeyMetricsOff:     "las métricas están desactivadas",
			MsgKeyGoodbye:        "adiós",
		},
	}
}
