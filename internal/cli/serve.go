package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/solarwise/solarwise-carbon/internal/emissions"
	"github.com/solarwise/solarwise-carbon/internal/server"
)

// httpServer is the part of server.Server that runServer drives.
type httpServer interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			store, err := emissions.Open(cfg.DatasetPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(store, cfg, logger)
			return runServer(ctx, srv, cfg.ListenAddr, cfg.ShutdownTimeout, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

// runServer runs srv until ctx is cancelled or the server fails, then shuts
// it down within timeout.
func runServer(
	ctx context.Context,
	srv httpServer,
	addr string,
	timeout time.Duration,
	logger zerolog.Logger,
) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
