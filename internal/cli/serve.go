package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/supuni9622/crm-application/server"
)

const shutdownTimeout = 5 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts, cmd)
		},
	}
}

func runServe(opts *RootOptions, cmd *cobra.Command) error {
	source, err := newSource(opts)
	if err != nil {
		return err
	}
	exchange, err := newExchange(opts, source)
	if err != nil {
		return err
	}
	handler, err := server.New(opts.config, server.Deps{Exchange: exchange, Source: source}, server.WithNowTime(opts.nowTime))
	if err != nil {
		return err
	}

	displayAppname(cmd, opts.config.GetAppName())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: opts.config.GetPort(), Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		errCh <- listenAndServe(srv)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	return shutdown(srv)
}

func listenAndServe(srv *http.Server) error {
	log.Info().Msgf("Server listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "[listenAndServe] server.ListenAndServe")
	}
	return nil
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "[shutdown] server.Shutdown")
	}
	log.Info().Msg("Server stopped")
	return nil
}

func displayAppname(cmd *cobra.Command, appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(cmd.OutOrStdout(), myFigure.String())
}
