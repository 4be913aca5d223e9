package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/items_api/internal/config"
	"github.com/Skotchmaster/items_api/internal/db"
	"github.com/Skotchmaster/items_api/internal/events"
	"github.com/Skotchmaster/items_api/internal/httpserver"
	"github.com/Skotchmaster/items_api/internal/logging"
	authmw "github.com/Skotchmaster/items_api/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/items_api/internal/middleware/logging"
	"github.com/Skotchmaster/items_api/internal/repo"
	"github.com/Skotchmaster/items_api/internal/search"
	"github.com/Skotchmaster/items_api/internal/service"
	"github.com/Skotchmaster/items_api/internal/tokens"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		prod, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		publisher = prod

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = events.EnsureTopics(ctx, cfg.KafkaBrokers[0], cfg.KafkaTopicPrefix, events.TopicUser, events.TopicItem)
		cancel()
		if err != nil {
			logger.Warn("kafka_topics_not_ensured", "error", err)
		}
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	store := repo.New(gdb)
	itemSvc := &service.ItemService{Items: store, Events: publisher}

	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		index := search.NewItemIndex(esClient, cfg.ESIndex)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = index.EnsureIndex(ctx)
		cancel()
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		itemSvc.Index = index
		logger.Info("search_index_enabled", "index", cfg.ESIndex)
	}

	tokenMgr := tokens.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := &service.AuthService{Users: store, Tokens: tokenMgr, Events: publisher}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: authSvc},
		ItemHandler: &httpserver.ItemHTTP{Svc: itemSvc},
		Auth:        authmw.NewBearerAuth(tokenMgr),
		DB:          gdb,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db close", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka close", "error", err)
	}

	logger.Info("shutdown complete")
}
