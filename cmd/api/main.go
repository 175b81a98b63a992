package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"arta-api/internal/client"
	"arta-api/internal/config"
	"arta-api/internal/handler"
	"arta-api/internal/repository"
	"arta-api/internal/server"
	"arta-api/internal/service"
)

func initLogger(logCfg config.Log) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logCfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var h slog.Handler
	if logCfg.Format == "text" {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		h = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)

	db := client.InitDBClient(cfg.DatabaseDSN)
	midtransClient := client.NewMidtransClient(&cfg.Midtrans)
	taskInvoker := client.NewRedisTaskInvoker(cfg.Tasks.RedisAddr, cfg.Tasks.QueuePrefix)

	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductMappingRepository(db)
	promoRepo := repository.NewPromoCodeRepository(db)
	regionRepo := repository.NewRegionRepository(db)

	orderService := service.NewOrderService(
		orderRepo,
		productRepo,
		midtransClient,
		taskInvoker,
		logger,
		cfg.Orders.InProgressStatuses,
		cfg.Orders.PageSize,
	)
	promotionService := service.NewPromotionService(productRepo, promoRepo)
	catalogService := service.NewCatalogService(productRepo, regionRepo)

	orderHandler := handler.NewOrderHandler(orderService)
	promotionHandler := handler.NewPromotionHandler(promotionService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	srv := server.NewServer(cfg.Auth, orderHandler, promotionHandler, catalogHandler)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", "addr", serverAddr, "env", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
