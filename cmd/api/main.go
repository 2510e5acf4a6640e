package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"frontdesk/pkg/api"
	"frontdesk/pkg/config"
	"frontdesk/pkg/desk"
	"frontdesk/pkg/logger"
	"frontdesk/pkg/metrics"
	"frontdesk/pkg/order"
	"frontdesk/pkg/order/memory"
	pg "frontdesk/pkg/order/postgres"
	"frontdesk/pkg/order/stream"
	"frontdesk/pkg/otel"
	"frontdesk/pkg/ws"
)

// @title Front Desk API
// @version 1.0
// @description Order registry for a restaurant front desk
// @host localhost:8443
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("frontdesk")
	if err != nil {
		logger.New(os.Stderr, logger.LevelError, "frontdesk", nil).Error(context.Background(), "load config", "error", err)
		return err
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level), cfg.Name, otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: cfg.Name, Host: cfg.OTel.Host, Probability: cfg.OTel.Probability})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return err
	}
	defer shutdown(context.Background())

	hub := ws.NewHub()
	publishers := []desk.NamedPublisher{{Name: "ws", Publisher: hub}}
	var feed order.Feed

	if cfg.Postgres.DSN != "" {
		journal, err := pg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Error(ctx, "open journal", "error", err)
			return err
		}
		defer journal.Close()
		publishers = append(publishers, desk.NamedPublisher{Name: "postgres", Publisher: journal})
		feed = journal
		log.Info(ctx, "event journal enabled")
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error(ctx, "redis ping", "addr", cfg.Redis.Addr, "error", err)
			return err
		}
		events := stream.New(rdb, cfg.Redis.Stream, cfg.Redis.MaxLen)
		publishers = append(publishers, desk.NamedPublisher{Name: "redis", Publisher: events})
		if feed == nil {
			feed = events
		}
		log.Info(ctx, "event stream enabled", "stream", cfg.Redis.Stream)
	}

	m := metrics.New()
	reg := memory.NewWithOptions(memory.Options{
		Slots:               cfg.Registry.Slots,
		ReservationCapacity: cfg.Registry.ReservationCapacity,
	})
	svc := desk.New(reg, log, m, publishers...)

	handler := api.NewRouter(api.New(svc, log, feed), log, api.RouterConfig{
		Tracer:         tp.Tracer(cfg.Name),
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Metrics:        m.Handler(),
		Live:           hub.Handler(originChecker(cfg.HTTP.AllowedOrigins)),
	})
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return hub.Run(ctx) })
	g.Go(func() error {
		log.Info(ctx, "listening", "addr", cfg.HTTP.Addr, "tls", cfg.HTTP.CertFile != "")
		var err error
		if cfg.HTTP.CertFile != "" && cfg.HTTP.KeyFile != "" {
			err = srv.ListenAndServeTLS(cfg.HTTP.CertFile, cfg.HTTP.KeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(context.Background(), "server closed", "error", err)
		return err
	}
	log.Info(context.Background(), "server stopped")
	return nil
}

func originChecker(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
	}
}
