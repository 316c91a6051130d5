package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/stockly/stock-management/internal/stock"
	httpDelivery "github.com/stockly/stock-management/internal/stock/delivery/http"
	"github.com/stockly/stock-management/internal/stock/domain"
	"github.com/stockly/stock-management/kafka"
	"github.com/stockly/stock-management/pkg/database"
	"github.com/stockly/stock-management/pkg/logger"
	"github.com/stockly/stock-management/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "stock-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting stock service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "stockdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations in development; production schemas come from cmd/migrate
	if isDevelopment {
		if err := db.AutoMigrate(&domain.Stock{}, &domain.StockProductLine{}, &domain.StockVariantLine{}); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher (optional)
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize handler with Wire DI
	handler, err := stock.InitializeHTTPHandler(db, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	// Consume catalog events to report dangling references
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		startCatalogConsumer(strings.Split(brokers, ","), stock.ProvideStockRepository(db))
	}

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8082")
	startHTTPServer(handler, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

// startCatalogConsumer subscribes to catalog events. A deleted product does
// not invalidate stock lines (reads degrade to nil display fields); the
// consumer only surfaces how many lines went dangling.
func startCatalogConsumer(brokers []string, repo domain.StockRepository) {
	consumer, err := kafka.NewConsumer(brokers, "stock-service", []string{kafka.TopicCatalogEvents})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka consumer")
		return
	}

	consumer.RegisterHandler(kafka.EventTypeProductDeleted, func(ctx context.Context, payload []byte) error {
		var event kafka.ProductDeletedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return err
		}
		count, err := repo.CountLinesForProduct(ctx, event.TenantID, event.ProductID)
		if err != nil {
			return err
		}
		if count > 0 {
			logger.Warn(ctx).
				Str("product_id", event.ProductID).
				Int64("dangling_lines", count).
				Msg("Catalog product deleted while referenced by stock lines")
		}
		return nil
	})

	if err := consumer.Start(context.Background()); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
	}
}

func startHTTPServer(handler *httpDelivery.StockHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	httpDelivery.RegisterMiddlewares(router)
	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router, db)
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
