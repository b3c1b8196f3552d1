package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown and surfaces ListenAndServe errors to the caller.
func (srv HTTPServer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scheduler, err := srv.mapHandlers(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}
	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	defer scheduler.Stop()

	addr := fmt.Sprintf("%s:%d", srv.host, srv.port)
	server := &http.Server{
		Addr:    addr,
		Handler: srv.gin,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "Started server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-ch:
		srv.l.Infof(ctx, "Received signal %v, shutting down gracefully", sig)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Server shutdown error: %v", err)
		return err
	}
	srv.l.Info(ctx, "API server stopped.")
	return nil
}
