package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ndmitr1/EventRegistrar/internal/config"
	"github.com/ndmitr1/EventRegistrar/internal/gateway"
	"github.com/ndmitr1/EventRegistrar/internal/handler"
	"github.com/ndmitr1/EventRegistrar/internal/lock"
	"github.com/ndmitr1/EventRegistrar/internal/middleware"
	"github.com/ndmitr1/EventRegistrar/internal/notification"
	"github.com/ndmitr1/EventRegistrar/internal/repository"
	"github.com/ndmitr1/EventRegistrar/internal/router"
	"github.com/ndmitr1/EventRegistrar/internal/scheduler"
	"github.com/ndmitr1/EventRegistrar/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventRegistrar",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	roleRepo := repository.NewRoleRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	regRepo := repository.NewRegistrationRepo(a.db)
	txnRepo := repository.NewTransactionRepo(a.db)

	// блокировки: postgres для нескольких инстансов, memory для одного
	var (
		store       lock.Store
		pgLockStore *repository.LockStore
	)
	if a.cfg.Lock.Engine == "memory" {
		store = lock.NewMemoryStore()
		a.log.Warn("in-memory lock store selected, correct for a single instance only")
	} else {
		pgLockStore = repository.NewLockStore(a.db)
		store = pgLockStore
	}
	locker := lock.NewService(store, a.log,
		lock.WithPollInterval(a.cfg.Lock.PollInterval, a.cfg.Lock.MaxPollInterval),
	)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	gatewayClient := gateway.NewClient(
		a.cfg.Gateway.BaseURL,
		a.cfg.Gateway.APIKey,
		a.cfg.Gateway.Timeout,
		a.log,
	)
	verifier := gateway.NewVerifier(a.cfg.Gateway.WebhookSecret)
	if a.cfg.Gateway.WebhookSecret == "" {
		a.log.Warn("gateway webhook secret is empty, completion webhooks will be rejected")
	}

	eventService := service.NewEventService(eventRepo, roleRepo)
	userService := service.NewUserService(userRepo)
	capacityService := service.NewCapacityService(roleRepo, regRepo)
	registrationService := service.NewRegistrationService(
		regRepo, roleRepo, eventRepo, userRepo,
		capacityService, locker, n, a.log,
		service.WithRoleCeiling(a.cfg.Registration.RoleCeiling),
		service.WithRegistrationLocking(a.cfg.Lock.TTL, a.cfg.Lock.WaitTimeout),
	)
	paymentService := service.NewPaymentService(
		txnRepo, roleRepo, eventRepo, userRepo,
		gatewayClient, locker, n, a.log,
		service.WithCheckoutTTL(a.cfg.Gateway.CheckoutTTL),
		service.WithPaymentLocking(a.cfg.Lock.TTL, a.cfg.Lock.WaitTimeout),
	)

	if pgLockStore != nil {
		a.scheduler = scheduler.New(paymentService, pgLockStore, a.cfg.Scheduler.Interval, a.log)
	} else {
		a.scheduler = scheduler.New(paymentService, nil, a.cfg.Scheduler.Interval, a.log)
	}

	h := handler.NewHandler(
		eventService,
		registrationService,
		paymentService,
		userService,
		capacityService,
		verifier,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
