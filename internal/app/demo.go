package app

import (
	"context"
	"fmt"
)

// Demo runs the full pipeline in its documented order: reset and seed, show,
// pseudonymize, encrypt, show. With KeepAlive set it then blocks until ctx
// is cancelled.
func (a *App) Demo(ctx context.Context) error {
	if err := a.InitAndSeed(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Initial state:")
	if err := a.List(ctx); err != nil {
		return err
	}

	if _, err := a.PseudonymizeAll(ctx); err != nil {
		return err
	}
	if _, err := a.EncryptAllEmails(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "After anonymization + encryption:")
	if err := a.List(ctx); err != nil {
		return err
	}

	if a.config.KeepAlive {
		fmt.Fprintln(a.out, "Container is running. Press Ctrl+C to exit.")
		<-ctx.Done()
		a.logger.Info(ctx, "shutting down")
	}
	return nil
}
