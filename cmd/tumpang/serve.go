package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piresc/tumpang/internal/pkg/config"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/health"
	httpclient "github.com/piresc/tumpang/internal/pkg/http"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/middleware"
	"github.com/piresc/tumpang/internal/pkg/models"
	nsqpkg "github.com/piresc/tumpang/internal/pkg/nsq"
	"github.com/piresc/tumpang/internal/pkg/retry"
	"github.com/piresc/tumpang/internal/pkg/server"
	"github.com/piresc/tumpang/internal/pkg/storage"
	wspkg "github.com/piresc/tumpang/internal/pkg/websocket"

	bidsgw "github.com/piresc/tumpang/services/bids/gateway"
	bidshandler "github.com/piresc/tumpang/services/bids/handler"
	bidshttp "github.com/piresc/tumpang/services/bids/handler/http"
	bidsrepo "github.com/piresc/tumpang/services/bids/repository"
	bidsuc "github.com/piresc/tumpang/services/bids/usecase"
	bookingsgw "github.com/piresc/tumpang/services/bookings/gateway"
	bookingshandler "github.com/piresc/tumpang/services/bookings/handler"
	bookingshttp "github.com/piresc/tumpang/services/bookings/handler/http"
	bookingsrepo "github.com/piresc/tumpang/services/bookings/repository"
	bookingsuc "github.com/piresc/tumpang/services/bookings/usecase"
	formshandler "github.com/piresc/tumpang/services/forms/handler"
	formshttp "github.com/piresc/tumpang/services/forms/handler/http"
	notifhandler "github.com/piresc/tumpang/services/notifications/handler"
	notifnsq "github.com/piresc/tumpang/services/notifications/handler/nsq"
	notifws "github.com/piresc/tumpang/services/notifications/handler/websocket"
	notifuc "github.com/piresc/tumpang/services/notifications/usecase"
	tripsgw "github.com/piresc/tumpang/services/trips/gateway"
	tripshandler "github.com/piresc/tumpang/services/trips/handler"
	tripshttp "github.com/piresc/tumpang/services/trips/handler/http"
	tripsrepo "github.com/piresc/tumpang/services/trips/repository"
	tripsuc "github.com/piresc/tumpang/services/trips/usecase"
	usersgw "github.com/piresc/tumpang/services/users/gateway"
	usershandler "github.com/piresc/tumpang/services/users/handler"
	usershttp "github.com/piresc/tumpang/services/users/handler/http"
	usersrepo "github.com/piresc/tumpang/services/users/repository"
	usersuc "github.com/piresc/tumpang/services/users/usecase"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, websocket hub and event consumers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), config.InitConfig(*configPath))
		},
	}
}

func serve(parent context.Context, configs *models.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return err
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
		defer cancel()
		_ = shutdown.Shutdown(shutdownCtx)
	}()

	if configs.Database.MigrateOnStart {
		migrator, err := database.NewMigrator(configs.Database)
		if err != nil {
			return err
		}
		err = migrator.Up()
		_ = migrator.Close()
		if err != nil {
			return err
		}
	}

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Error("Failed to connect to PostgreSQL", zap.Error(err))
		return err
	}
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Error("Failed to connect to Redis", zap.Error(err))
		return err
	}
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })

	retrier := retry.NewWithDefaults(zapLogger)

	var publisher *nsqpkg.JSONPublisher
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Error("Failed to create NSQ producer", zap.Error(err))
			return err
		}
		shutdown.Register("nsq-producer", func(context.Context) error {
			producer.Stop()
			return nil
		})
		publishRetrier := retry.New(retry.Config{
			MaxRetries: 2,
			BaseDelay:  50 * time.Millisecond,
			MaxDelay:   500 * time.Millisecond,
			Multiplier: 2.0,
			Jitter:     true,
		}, zapLogger)
		publisher = nsqpkg.NewJSONPublisher(producer, publishRetrier).
			WithTimeout(time.Duration(configs.NSQ.PublishTimeout) * time.Millisecond)
	} else {
		zapLogger.Warn("NSQ disabled, events will not be published")
	}

	uploader, err := storage.New(configs.Storage)
	if err != nil {
		zapLogger.Error("Failed to initialize avatar storage", zap.Error(err))
		return err
	}

	db := postgresClient.GetDB()

	// Users
	sessionRepo := usersrepo.NewSessionRepo(configs, redisClient)
	userUC := usersuc.NewUserUC(
		configs,
		usersrepo.NewUserRepo(configs, db),
		sessionRepo,
		usersgw.NewUserGW(httpclient.NewClient(10*time.Second, retrier), uploader),
	)

	// Trips
	tripUC := tripsuc.NewTripUC(
		configs,
		tripsrepo.NewTripRepo(configs, db),
		tripsrepo.NewStatsCache(redisClient),
		tripsgw.NewTripGW(publisher),
	)

	// Bids and bookings
	bidUC := bidsuc.NewBidUC(configs, bidsrepo.NewBidRepo(configs, db), bidsgw.NewBidGW(publisher))
	bookingUC := bookingsuc.NewBookingUC(configs, bookingsrepo.NewBookingRepo(configs, db), bookingsgw.NewBookingGW(publisher))

	// Notifications
	manager := wspkg.NewManager()
	shutdown.Register("websocket", func(context.Context) error {
		manager.CloseAll()
		return nil
	})
	notificationUC := notifuc.NewNotificationUC(tripUC, manager)
	if configs.NSQ.Enabled {
		eventHandler := notifnsq.NewEventHandler(notificationUC, configs.NSQ)
		if err := eventHandler.InitNSQConsumers(); err != nil {
			zapLogger.Error("Failed to initialize NSQ consumers", zap.Error(err))
			return err
		}
		shutdown.Register("nsq-consumers", func(context.Context) error {
			eventHandler.Stop()
			return nil
		})
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewService(appName, configs.App.Version)
	healthService.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	if producer != nil {
		healthService.AddChecker("nsq", health.CheckerFunc(producer.Ping))
	}
	healthService.RegisterEndpoints(e)

	if local, ok := uploader.(*storage.LocalUploader); ok && strings.HasPrefix(configs.Storage.BaseURL, "/") {
		e.Static(configs.Storage.BaseURL, local.Dir())
	}

	session := middleware.SessionMiddleware(configs.JWT, sessionRepo)

	usershandler.NewHandler(usershttp.NewAuthHandler(userUC), usershttp.NewUserHandler(userUC)).RegisterRoutes(e, session)
	tripshandler.NewHandler(tripshttp.NewTripHandler(tripUC)).RegisterRoutes(e, session)
	bidshandler.NewHandler(bidshttp.NewBidHandler(bidUC)).RegisterRoutes(e, session)
	bookingshandler.NewHandler(bookingshttp.NewBookingHandler(bookingUC)).RegisterRoutes(e, session)
	formshandler.NewHandler(formshttp.NewFormsHandler()).RegisterRoutes(e)
	notifhandler.NewHandler(notifws.NewWebSocketHandler(manager)).RegisterRoutes(e, session)

	return server.NewGracefulServer(e, zapLogger, configs.Server).Run(ctx)
}
