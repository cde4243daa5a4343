package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ghbox/pkg/cli/config"
	"github.com/m-mizutani/ghbox/pkg/controller/server"
	"github.com/m-mizutani/ghbox/pkg/session"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		backend backend
		sentry  config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GHBOX_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			backend.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("Backend", &backend),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush()

			uc, ghClient, err := backend.newUseCase(ctx)
			if err != nil {
				return err
			}

			sessions := session.NewStore(ghClient, uc, backend.resolver.SessionOptions()...)
			defer sessions.Close()

			s := server.New(uc,
				server.WithSessionStore(sessions),
				server.WithSandboxHost(backend.codeSandbox.BaseURL()),
			)

			return runHTTPServer(ctx, &http.Server{
				Addr:              addr,
				Handler:           s.Mux(),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      120 * time.Second,
			}, shutdownTimeout)
		},
	}
}

const shutdownTimeout = 30 * time.Second

// runHTTPServer serves until the listener fails, ctx is canceled or the
// process receives SIGINT/SIGTERM. In-flight requests get timeout to finish.
func runHTTPServer(ctx context.Context, httpServer *http.Server, timeout time.Duration) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logging.Default().Info("starting http server", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", httpServer.Addr))
		}
	}()

	select {
	case err := <-serverErr:
		return err

	case <-ctx.Done():
		logging.Default().Info("shutting down server", "cause", context.Cause(ctx))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server")
		}
	}

	return nil
}
