package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/convcalc"
	"github.com/eringen/convcalc/views"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := convcalc.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger, err := convcalc.NewLogger(cfg.LogLevel, cfg.LogDevelopment)
			if err != nil {
				return err
			}
			defer logger.Sync()

			app := convcalc.New(cfg, views.New(cfg),
				convcalc.WithLogger(logger),
				convcalc.WithStaticDir(staticDir),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- app.Start() }()

			select {
			case err := <-errCh:
				if err != nil {
					logger.Error("server stopped", zap.Error(err))
				}
				app.Close()
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ADDR)")
	cmd.Flags().StringVar(&staticDir, "static", "public", "directory for user static assets and uploads")
	return cmd
}
