package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stpnv0/StayBooker/internal/cache"
	"github.com/stpnv0/StayBooker/internal/config"
	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/notification"
	"github.com/stpnv0/StayBooker/internal/repository"
	"github.com/stpnv0/StayBooker/internal/repository/memory"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stpnv0/StayBooker/internal/scheduler"
	"github.com/stpnv0/StayBooker/internal/service"
	"github.com/stpnv0/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type repos struct {
	users    ports.UserRepo
	listings ports.ListingRepo
	bookings ports.BookingRepo
	reviews  ports.ReviewRepo
}

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	kafkaWriter *kafka.Writer
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"StayBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	r, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(r); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (repos, error) {
	if a.cfg.Storage.Driver == "memory" {
		store := memory.NewStore()
		a.log.Warn("using in-memory storage, data is lost on restart")
		return repos{
			users:    memory.NewUserRepo(store),
			listings: memory.NewListingRepo(store),
			bookings: memory.NewBookingRepo(store),
			reviews:  memory.NewReviewRepo(store),
		}, nil
	}

	if err := a.initDB(); err != nil {
		return repos{}, err
	}
	if err := a.runMigrations(); err != nil {
		return repos{}, fmt.Errorf("migrations: %w", err)
	}

	return repos{
		users:    repository.NewUserRepo(a.db),
		listings: repository.NewListingRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
		reviews:  repository.NewReviewRepo(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		db.Master.Close()
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

func (a *App) initCache() (ports.ListingCache, error) {
	if !a.cfg.Redis.Enabled {
		return cache.Noop{}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	a.redis = client

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
		logger.Duration("ttl", a.cfg.Redis.TTL),
	)

	return cache.NewListingCache(client, a.cfg.Redis.TTL), nil
}

func (a *App) initNotifier() (ports.BookingNotifier, error) {
	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram notifier: %w", err)
	}
	notifiers := []ports.BookingNotifier{tg}

	if a.cfg.Kafka.Enabled {
		a.kafkaWriter = notification.NewKafkaWriter(a.cfg.Kafka.Brokers, a.cfg.Kafka.Topic)
		notifiers = append(notifiers, notification.NewKafkaNotifier(a.kafkaWriter, a.log))

		a.log.LogAttrs(context.Background(), logger.InfoLevel, "kafka publisher enabled",
			logger.Any("brokers", a.cfg.Kafka.Brokers),
			logger.String("topic", a.cfg.Kafka.Topic),
		)
	}

	return notification.NewMulti(notifiers...), nil
}

func (a *App) initServices(r repos) error {
	listingCache, err := a.initCache()
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}

	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	userService := service.NewUserService(r.users, a.log)
	listingService := service.NewListingService(r.listings, listingCache, a.log)
	reviewService := service.NewReviewService(r.reviews, r.bookings, r.listings, listingCache, a.log)
	bookingService := service.NewBookingService(
		r.bookings, r.listings, r.users, listingCache, n, a.log,
		a.cfg.Booking.ReleaseOnCancel,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(listingService, bookingService, reviewService, userService)
	engine := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.NewTokenValidator(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      engine,
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

	if a.kafkaWriter != nil {
		if err := a.kafkaWriter.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "failed to close kafka writer",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.LogAttrs(context.Background(), logger.ErrorLevel, "failed to close redis client",
				logger.String("error", err.Error()),
			)
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(a.db.Master, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
