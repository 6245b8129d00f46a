package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"go-commerce/internal/customers/adapters"
	"go-commerce/internal/customers/application"
	customershttp "go-commerce/internal/customers/infrastructure"
	"go-commerce/internal/customers/ports"
	"go-commerce/internal/payments"
	paymentshttp "go-commerce/internal/payments/infrastructure"
	"go-commerce/pkg/config"
	"go-commerce/pkg/events"
	"go-commerce/pkg/logger"
	"go-commerce/pkg/middleware"
	"go-commerce/pkg/rabbitmq"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log := logger.New(cfg.ServiceName, cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("starting commerce service")

	// Initialize repository
	repo := adapters.NewMemoryCustomerRepository()

	// Connect to RabbitMQ
	var publisher *adapters.RabbitMQPublisher
	if cfg.EventsEnabled {
		rabbitConn, err := rabbitmq.NewConnection(cfg.RabbitMQURL, log)
		if err != nil {
			log.Warn("failed to connect to RabbitMQ, events will be disabled: " + err.Error())
		} else {
			defer rabbitConn.Close()

			pub, err := rabbitmq.NewPublisher(rabbitConn, events.ExchangeCommerce, log)
			if err != nil {
				log.Warn("failed to create publisher: " + err.Error())
			} else {
				publisher = adapters.NewRabbitMQPublisher(pub, log)
			}
		}
	}

	// Initialize use case and payment processor. A typed-nil publisher
	// must not reach the interface field, hence the indirection.
	var eventPublisher ports.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	useCase := application.NewCommerceUseCase(repo, eventPublisher, log)
	processor := payments.NewCreditCardProcessor(payments.NewZapLogger(log))

	// Start HTTP server
	customersHandler := customershttp.NewHTTPHandler(useCase)
	paymentsHandler := paymentshttp.NewHTTPHandler(processor)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.TraceID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS())

	api := router.Group("/api/v1")
	customersHandler.RegisterRoutes(api)
	paymentsHandler.RegisterRoutes(api)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
	}

	go func() {
		log.Info("HTTP server listening on :" + cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error: " + err.Error())
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP shutdown error: " + err.Error())
	}

	log.Info("server stopped")
}
