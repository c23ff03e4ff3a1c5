package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oceanbook/booking-system/internal/api"
	"github.com/oceanbook/booking-system/internal/core/service"
	"github.com/oceanbook/booking-system/internal/infrastructure/config"
	mongodb "github.com/oceanbook/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/oceanbook/booking-system/internal/infrastructure/db/redis"
	"github.com/oceanbook/booking-system/internal/infrastructure/notify"
	"github.com/oceanbook/booking-system/internal/infrastructure/queue"
	"github.com/oceanbook/booking-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	notifier := notify.NewKafkaNotifier(notify.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	}, log)
	defer func() { _ = notifier.Close() }()

	// --- Repositories ---
	bookingRepo := mongodb.NewBookingRepository(db)
	shipmentRepo := mongodb.NewShipmentRepository(db)
	vesselRepo := mongodb.NewVesselRepository(db)
	locationRepo := mongodb.NewLocationRepository(db)
	addressRepo := mongodb.NewAddressRepository(db)
	facilityRepo := mongodb.NewFacilityRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	bookingStores := mongodb.NewBookingStores(db)
	shipmentStores := mongodb.NewShipmentStores(db)

	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure booking indexes")
	}
	if err := shipmentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure shipment indexes")
	}

	// --- Services ---
	vesselResolver := service.NewVesselResolver(vesselRepo, log)
	locationResolver := service.NewLocationResolver(locationRepo, addressRepo, facilityRepo, log)
	bookingService := service.NewBookingService(bookingRepo, bookingStores, eventRepo, notifier, vesselResolver, locationResolver, log)
	shipmentService := service.NewShipmentService(shipmentRepo, bookingService, shipmentStores, vesselRepo, locationResolver, log)

	dedup := redisdb.NewDedupChecker(rdb)
	carrierEventService := service.NewCarrierEventService(bookingRepo, shipmentRepo, eventRepo, notifier, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, carrierEventService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Deps{
		Bookings:     bookingService,
		Shipments:    shipmentService,
		Dispatcher:   dispatcher,
		Mongo:        db,
		Redis:        rdb,
		KafkaBrokers: cfg.Kafka.Brokers,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("booking system started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
