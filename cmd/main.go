package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"finboard/internal/handler"
	"finboard/internal/repo"
	"finboard/internal/service"
	"finboard/pkg/database"
	"finboard/pkg/integrations/chanPubsub"
	"finboard/pkg/integrations/markets"
	"finboard/pkg/integrations/news"
	"finboard/pkg/memcache"
	"finboard/pkg/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title FinBoard API
// @version 1.0
// @description Personal finance dashboard API

// @host localhost:8080
// @BasePath /

func main() {
	utils.LoadEnv()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPath := utils.GetEnv("DB_PATH", "./data/finboard.db")
	db, err := database.New(database.WithPath(dbPath))
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	repository, err := repo.New(db.Get())
	if err != nil {
		log.Fatal("Failed to create repository:", err)
	}

	if err := repository.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	newsFetcher := news.NewFetcher(utils.GetEnv("NEWS_API_KEY", "demo"))
	marketFetcher := markets.NewFetcher(utils.GetEnv("MARKET_API_KEY", "demo"))
	feedCache := memcache.New[string, service.Feed]()

	newsSvc, err := service.NewNewsService(
		service.WithContext(ctx),
		service.WithLogger(logger),
		service.WithArticleFetcher(newsFetcher),
		service.WithIndexFetcher(marketFetcher),
		service.WithCache(feedCache),
	)
	if err != nil {
		log.Fatal("Failed to create news service:", err)
	}
	if err := newsSvc.Start(); err != nil {
		log.Fatal("Failed to start news service:", err)
	}

	txCh := make(chan []byte, 10)
	txPublisher := chanPubsub.New(
		chanPubsub.WithChannel(txCh),
		chanPubsub.WithContext(ctx),
		chanPubsub.WithTopic("transactions"),
		chanPubsub.WithLogger(logger),
		chanPubsub.WithHandler(func(data []byte) error {
			logger.Info("transaction recorded", "event", string(data))
			return nil
		}),
	)
	if err := txPublisher.Subscribe(); err != nil {
		log.Fatal("Failed to start transaction subscriber:", err)
	}

	r := gin.Default()

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h, err := handler.New(
		handler.WithEngine(r),
		handler.WithRepository(repository),
		handler.WithLogger(logger),
		handler.WithNewsFeeder(newsSvc),
		handler.WithTransactionPublisher(txPublisher),
	)
	if err != nil {
		log.Fatal("Failed to create handler:", err)
	}
	if err := h.Setup(); err != nil {
		log.Fatal("Failed to setup routes:", err)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("shutting down...")
		cancel()
		newsSvc.Stop()
		os.Exit(0)
	}()

	logger.Info("starting FinBoard", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
