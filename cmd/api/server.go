package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const limiterIdleTTL = 10 * time.Minute

func (app *application) serve() error {
	app.limiter = newIPLimiter(app.Config.Limiter.RPS, app.Config.Limiter.Burst)

	router, err := app.routes()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		t := time.NewTicker(time.Minute)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				app.limiter.sweep(now, limiterIdleTTL)
				if n := app.Sessions.Sweep(now); n > 0 {
					app.Logger.Info("sessions: dropped expired logins", zap.Int("count", n))
				}
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("starting server", zap.String("addr", server.Addr), zap.String("env", app.Config.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	app.Sessions.Close()
	return err
}
