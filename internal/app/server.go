package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Start runs the HTTP server and blocks until the process receives an
// interrupt or termination signal.
func (a *App) Start() {
	go func() {
		slog.Info("http server starting", "address", a.httpServer.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped unexpectedly", "error", err)
			a.cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	case <-a.ctx.Done():
		slog.Info("application context canceled")
	}
}

// Serve runs the HTTP server on the provided listener. Intended for tests.
func (a *App) Serve(l net.Listener) error {
	if err := a.httpServer.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server and releases resources in reverse
// dependency order.
func (a *App) Stop(ctx context.Context) {
	a.cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown http server", "error", err)
	}

	if err := a.goroutine.Wait(); err != nil {
		slog.Error("failed to wait background goroutines", "error", err)
	}

	for _, closer := range a.closers {
		if err := closer.fn(ctx); err != nil {
			slog.Error("failed to close resource", "name", closer.name, "error", err)
		}
	}

	slog.Info("application stopped")
}
