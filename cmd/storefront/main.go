package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcmexdev/fantasy-books/internal/pkg/config"
	"github.com/jcmexdev/fantasy-books/internal/pkg/telemetry"
	"github.com/jcmexdev/fantasy-books/internal/storefront/adapters/kv"
	"github.com/jcmexdev/fantasy-books/internal/storefront/adapters/rabbitmq"
	"github.com/jcmexdev/fantasy-books/internal/storefront/app"
	"github.com/jcmexdev/fantasy-books/internal/storefront/httpx"
	orderlogsqlite "github.com/jcmexdev/fantasy-books/internal/storefront/orderlog/sqlite"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	telemetry.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	shutdown, err := telemetry.SetupTracer(ctx, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("tracer shutdown error", "error", err)
		}
	}()

	store, err := kv.Open(ctx, kv.Options{
		Driver:     cfg.StoreDriver,
		SQLitePath: cfg.SQLitePath,
		RedisAddr:  cfg.RedisAddr,
		Namespace:  "storefront",
	})
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("store ready", "driver", cfg.StoreDriver)

	var opts []app.OrdersOption
	if cfg.OrderLogPath != "" {
		orderLog, err := orderlogsqlite.Open(cfg.OrderLogPath)
		if err != nil {
			return err
		}
		defer orderLog.Close()
		opts = append(opts, app.WithOrderLog(orderLog))
		slog.Info("order log enabled", "path", cfg.OrderLogPath)
	}

	if cfg.RabbitMQURL != "" {
		pool, err := rabbitmq.NewChannelPool(cfg.RabbitMQURL, cfg.RabbitMQQueue, cfg.ChannelPoolSize)
		if err != nil {
			return err
		}
		defer pool.Close()
		opts = append(opts, app.WithEventPublisher(rabbitmq.NewPublisher(pool, cfg.RabbitMQQueue)))
	}

	catalog := app.NewCatalog(store)
	if err := catalog.Load(ctx); err != nil {
		slog.Warn("stored catalog unavailable, serving seed catalog", "error", err)
	}
	carts := app.NewCartEngine(store)
	orders := app.NewOrders(store, carts, opts...)

	if cfg.AdminToken == "" {
		slog.Warn("ADMIN_TOKEN is not set, admin routes are disabled")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           httpx.NewRouter(httpx.NewHandler(catalog, carts, orders), cfg.AdminToken),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("storefront http running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
