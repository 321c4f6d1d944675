package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/fontpicker/internal/cli"
	"github.com/bnema/fontpicker/internal/logging"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local HTTP preview of resolved families",
	Long: `Serve a local preview of font selections.

  GET /?font=inter&font=fira-code           HTML page using the families
  GET /url?font=inter&weights=400,700       stylesheet URL
  GET /render?font=inter&var=--font-sans    <link> and <style> markup
  GET /healthz                              catalog source and size

The config file is watched: selection defaults are reloaded on change.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (defaults to serve.addr from the config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := serveAddr
	if addr == "" {
		addr = a.Config.Serve.Addr
	}
	return serve(ctx, a, addr)
}

// serve blocks until ctx is cancelled or the listener fails.
func serve(ctx context.Context, a *cli.App, addr string) error {
	log := logging.FromContext(logging.WithComponent(a.Ctx(), "serve"))

	if err := a.WatchConfig(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           cli.NewPreviewHandler(a),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("starting preview server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown preview server: %w", err)
	}
	return nil
}
