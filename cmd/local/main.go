package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hello-lambda/hello"
)

const shutdownTimeout = 5 * time.Second

func main() {
	logger := hello.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", ":3000")
	if err != nil {
		slog.Error("error starting server", slog.Any("err", err))
		os.Exit(1)
	}
	slog.Info("Running on port :3000...")

	srv := &http.Server{Handler: hello.NewHTTPHandler(hello.Handler{Logger: logger})}
	if err := serve(ctx, srv, ln); err != nil {
		slog.Error("server failed", slog.Any("err", err))
		os.Exit(1)
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server closed")
	return nil
}
