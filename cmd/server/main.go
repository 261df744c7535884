package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	bcroot "github.com/nischal690/beingconsultant1-sub002"
	"github.com/nischal690/beingconsultant1-sub002/internal/config"
	"github.com/nischal690/beingconsultant1-sub002/internal/domain"
	"github.com/nischal690/beingconsultant1-sub002/internal/handler"
	"github.com/nischal690/beingconsultant1-sub002/internal/middleware"
	"github.com/nischal690/beingconsultant1-sub002/internal/notify"
	"github.com/nischal690/beingconsultant1-sub002/internal/payment"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository"
	"github.com/nischal690/beingconsultant1-sub002/internal/repository/sqlc"
	"github.com/nischal690/beingconsultant1-sub002/internal/service"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(bcroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize sqlc queries
	queries := sqlc.New(pool)

	// Initialize services
	couponService := service.NewCouponService(queries)
	ledgerService := service.NewLedgerService(pool, queries, couponService)
	reconcileService := service.NewReconcileService(queries, domain.DefaultProgramID)
	scheduleService := service.NewScheduleService(queries)
	ratesClient := service.NewRatesClient(cfg.RatesURL)
	notifier := notify.New(cfg)

	// Initialize payment gateways
	razorpay := payment.NewRazorpay(cfg)
	var gateways []payment.Gateway
	if cfg.RazorpayEnabled {
		gateways = append(gateways, razorpay)
	}
	if cfg.StripeEnabled {
		gateways = append(gateways, payment.NewStripe(cfg))
	}
	dispatcher := payment.NewDispatcher(ledgerService, gateways...)

	// Initialize handler
	h := handler.New(handler.Deps{
		Cfg:        cfg,
		Rates:      ratesClient,
		Coupons:    couponService,
		Dispatcher: dispatcher,
		Ledger:     ledgerService,
		Reconcile:  reconcileService,
		Schedule:   scheduleService,
		Razorpay:   razorpay,
		Notifier:   notifier,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recover(), middleware.Logging())
	h.Register(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}

	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}

	slog.Info("server stopped gracefully")
}
