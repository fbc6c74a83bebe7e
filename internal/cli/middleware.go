package cli

import (
	"errors"
	"time"

	"github.com/guttosm/restaurant-service/internal/domain/model"
)

// handler runs a command with its arguments.
type handler func(args []string) error

// middleware wraps the handler of the named command.
type middleware func(name string, next handler) handler

// chain applies mws so that the first one is the outermost.
func chain(name string, h handler, mws ...middleware) handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](name, h)
	}
	return h
}

// recovery turns a panicking command into errInternal.
func (s *Shell) recovery(name string, next handler) handler {
	return func(args []string) (err error) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error().
					Str("command", name).
					Interface("panic", p).
					Msg("PANIC recovered")
				err = errInternal
			}
		}()
		return next(args)
	}
}

// logging logs every command with its outcome and duration.
func (s *Shell) logging(name string, next handler) handler {
	return func(args []string) error {
		start := time.Now()
		err := next(args)

		log := s.logger.With().
			Str("command", name).
			Int("args", len(args)).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Logger()

		var cmdErr *commandError
		switch {
		case err == nil:
			log.Debug().Msg("command")
		case errors.Is(err, errUsage), errors.As(err, &cmdErr), errors.Is(err, model.ErrValidation):
			log.Info().Err(err).Msg("command rejected")
		default:
			log.Error().Err(err).Msg("command failed")
		}
		return err
	}
}
