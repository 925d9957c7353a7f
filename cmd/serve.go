package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/izza-m1/Secgap-Analyzer/internal/api"
	"github.com/izza-m1/Secgap-Analyzer/internal/checker"
	consts "github.com/izza-m1/Secgap-Analyzer/internal/shared/constants"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run secgap as a REST API service",
	Long: `Expose the checks over HTTP:

  POST /api/vuln-scan       {"url": "..."}
  POST /api/cookie-scan     {"url": "..."}
  POST /api/phishing-check  {"url": "..."}
  GET  /api/health

Every route is also served under /api/v1/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCtx := getAppContext(cmd)
		cfg := appCtx.Config.Serve
		out := cmd.OutOrStdout()

		httpServer := &http.Server{
			Addr:         cfg.Addr,
			Handler:      newAPIServer(appCtx),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		serverErrors := make(chan error, 1)

		go func() {
			appCtx.Logger.Info("api server starting",
				zap.String("addr", cfg.Addr),
				zap.Strings("cors_origins", cfg.CORSOrigins),
			)
			fmt.Fprintf(out, "%s API server listening on %s\n", colorInfo("→"), cfg.Addr)
			fmt.Fprintf(out, "%s Press Ctrl+C to gracefully shutdown\n", colorInfo("→"))
			serverErrors <- httpServer.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
		case sig := <-shutdown:
			fmt.Fprintf(out, "\n%s Received signal %v, initiating graceful shutdown...\n", colorInfo("→"), sig)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := httpServer.Shutdown(ctx); err != nil {
				if closeErr := httpServer.Close(); closeErr != nil {
					return fmt.Errorf("failed to gracefully shutdown server: %w (close error: %v)", err, closeErr)
				}
				return fmt.Errorf("failed to gracefully shutdown server: %w", err)
			}

			fmt.Fprintf(out, "%s Server shutdown complete\n", colorSuccess("✓"))
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", consts.DefaultListenAddr, "Address for the API server")
	serveCmd.Flags().Duration("shutdown-timeout", consts.DefaultShutdownTimeout, "Graceful shutdown timeout")
	serveCmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (empty = allow all)")
	rootCmd.AddCommand(serveCmd)
}

func newAPIServer(appCtx *AppContext) *api.Server {
	return api.NewServer(api.Config{
		Analyzers:   newAnalyzer(appCtx.Config),
		Logger:      appCtx.Logger,
		CORSOrigins: appCtx.Config.Serve.CORSOrigins,
	})
}

func newAnalyzer(cfg *CLIConfig) *checker.Analyzer {
	timeout := time.Duration(cfg.Defaults.TimeoutSecs) * time.Second
	return checker.NewAnalyzer(checker.NewHTTPFetcher(timeout, cfg.Defaults.UserAgent))
}
