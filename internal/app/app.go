package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/utafrali/recipex/internal/config"
	"github.com/utafrali/recipex/internal/event"
	handler "github.com/utafrali/recipex/internal/handler/http"
	mongorepo "github.com/utafrali/recipex/internal/repository/mongo"
	"github.com/utafrali/recipex/internal/service"
	"github.com/utafrali/recipex/internal/storage/s3"
	"github.com/utafrali/recipex/pkg/health"
	pkgkafka "github.com/utafrali/recipex/pkg/kafka"
	"github.com/utafrali/recipex/pkg/middleware"
	"github.com/utafrali/recipex/pkg/tracing"
)

// App wires together all dependencies and runs the recipex service.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	mongoClient    *mongodriver.Client
	producer       *pkgkafka.Producer
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "recipex",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Connect to MongoDB.
	mongoClient, err := mongorepo.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	logger.Info("connected to MongoDB",
		slog.String("database", cfg.MongoDatabase),
	)
	db := mongoClient.Database(cfg.MongoDatabase)

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Initialize the S3 presigner.
	presigner, err := s3.NewPresigner(ctx, s3.Config{
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 presigner: %w", err)
	}

	// Build the dependency graph.
	recipeRepo := mongorepo.NewRecipeRepository(db)
	userRepo := mongorepo.NewUserRepository(db)
	eventProducer := event.NewProducer(producer, logger)

	svcs := handler.Services{
		Users:   service.NewUserService(userRepo, recipeRepo, eventProducer, logger),
		Recipes: service.NewRecipeService(recipeRepo, eventProducer, logger),
		Reviews: service.NewReviewService(recipeRepo, eventProducer, logger),
		Images:  service.NewImageService(recipeRepo, presigner, cfg.S3Folder, cfg.ImageURLTTL(), logger),
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("mongo", func(ctx context.Context) error {
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	// HTTP router.
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins
	corsConfig.Environment = cfg.Environment
	router := handler.NewRouter(svcs, healthHandler, logger, corsConfig)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		mongoClient:    mongoClient,
		producer:       producer,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
// 3. Kafka producer
// 4. Mongo client
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	// 1. Drain in-flight HTTP requests (5s budget).
	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 2. Flush pending spans after HTTP drain so in-flight request spans are captured.
	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	// 3. Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	// 4. Disconnect from MongoDB.
	mongoCtx, mongoCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer mongoCancel()
	if err := a.mongoClient.Disconnect(mongoCtx); err != nil {
		a.logger.Error("mongo disconnect error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
