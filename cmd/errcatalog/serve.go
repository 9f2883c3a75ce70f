package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/apperr-lib/pkg/bootstrap"
	"github.com/Goden-Gun/apperr-lib/pkg/config"
	"github.com/Goden-Gun/apperr-lib/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		addr         string
		configPath   string
		securitySink string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classification table over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigPath:    configPath,
				EnvPrefix:     "ERRCATALOG",
				AllowNoConfig: true,
			})
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.App.Addr = addr
			}
			if securitySink != "" {
				cfg.Log.Sink.Security = securitySink
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&configPath, "config", "./configs", "directory holding config_<APP_ENV>.yaml")
	cmd.Flags().StringVar(&securitySink, "security-sink", "", "override the security sink: redis, kafka or file")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	rt, err := bootstrap.Init(ctx, cfg, "errcatalog", bootstrap.LoggerOptions{AddHostHook: true})
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = rt.Close(closeCtx)
	}()

	l := rt.Logging.Logger.WithArea("errcatalog")
	srv := &http.Server{
		Addr:              cfg.App.Addr,
		Handler:           newRouter(rt.Logging.Logger, routerOptions{Registry: rt.Registry, MetricsPath: cfg.Metrics.Path}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info(ctx, "catalog server listening", logger.Fields{"addr": cfg.App.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	l.Info(shutdownCtx, "catalog server shutting down", nil)
	return srv.Shutdown(shutdownCtx)
}
