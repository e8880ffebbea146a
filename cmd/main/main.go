package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"grocery-cart/internal/app"
	handlersCart "grocery-cart/internal/handlers/shopping_cart"
	"grocery-cart/internal/kafka"
	"grocery-cart/internal/middleware"
	"grocery-cart/internal/shopping_cart"
)

const cfgPath = "config/config.yaml"

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(cfgPath)
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init kafka producer
	var producer kafka.EventProducer = kafka.NopProducer{}
	if c.CfgKafka.Enabled() {
		producer = kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	} else {
		logger.Warn("kafka brokers are not configured, cart events are disabled")
	}
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init repository
	cartRepository := shopping_cart.NewShoppingCartRepository(logger, c.CfgCart.Capacity, c.CfgCart.WeightBudget)

	// init router
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	r := mux.NewRouter()
	r.Use(metrics.Middleware)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// init handlers
	cartHandlers := handlersCart.NewShoppingCartHandler(logger, cartRepository, producer)
	cartHandlers.Register(r.PathPrefix("/api").Subrouter())

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
		"capacity", c.CfgCart.Capacity,
		"weight_budget", c.CfgCart.WeightBudget,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("can't start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error to shutdown server: %v", err)
	}
}
