package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheetserve/internal/api"
	"github.com/ukaji3/sheetserve/internal/config"
	"github.com/ukaji3/sheetserve/pkg/sheetserve"
	"github.com/ukaji3/sheetserve/pkg/sheetserve/catalog"
)

func newServeCmd() *cobra.Command {
	var (
		listenAddr string
		sheet      string
	)

	cmd := &cobra.Command{
		Use:   "serve [workbook]",
		Short: "Serve table and row-sum queries over HTTP",
		Long: `serve loads the workbook into an in-memory catalog and answers queries
over HTTP. The catalog is built before the server starts listening; SIGHUP
rebuilds it from the same path without interrupting requests.`,
		Example: `  sheetserve serve capbudg.xlsx
  sheetserve serve --listen :8080 --sheet CapBudgWS /data/capbudg.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadFromEnv()
			if len(args) == 1 {
				cfg.WorkbookPath = args[0]
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}
			if sheet != "" {
				cfg.Sheet = sheet
			}
			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (overrides LISTEN_ADDR)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Load only the named sheet (overrides SHEET)")

	return cmd
}

func runServe(cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// The catalog must be ready before the listener opens
	cat, err := sheetserve.Load(cfg.WorkbookPath, sheetserve.Options{Sheet: cfg.Sheet})
	if err != nil {
		return fmt.Errorf("load workbook: %w", err)
	}
	store := &catalog.Store{}
	store.Replace(cat)
	logger.Info("catalog loaded", "workbook", cfg.WorkbookPath, "tables", cat.Len())

	// SIGHUP rebuilds the snapshot from the same path; a failed reload keeps
	// the current one
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for range hup {
			fresh, err := sheetserve.Load(cfg.WorkbookPath, sheetserve.Options{Sheet: cfg.Sheet})
			if err != nil {
				logger.Error("reload failed, keeping current catalog",
					"workbook", cfg.WorkbookPath, "error", err)
				continue
			}
			store.Replace(fresh)
			logger.Info("catalog reloaded", "workbook", cfg.WorkbookPath, "tables", fresh.Len())
		}
	}()

	handler := api.NewHandler(store, logger)
	srv := &http.Server{
		Addr: cfg.ListenAddr,
		Handler: api.NewRouter(handler, api.RouterConfig{
			RateLimitRPS:       cfg.RateLimitRPS,
			RateLimitBurst:     cfg.RateLimitBurst,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
