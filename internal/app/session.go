package app

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// Runner drives a session until its input ends or a shutdown signal arrives.
type Runner interface {
	Run(ctx context.Context, in io.Reader) error
}

// RunSession runs r on in and blocks until it returns or the process is
// interrupted. On interrupt the session context is cancelled and nil is returned.
func RunSession(ctx context.Context, r Runner, in io.Reader) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- r.Run(ctx, in)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("Session interrupted")
		return nil
	}
}
