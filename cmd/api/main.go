package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/user/broadcast-service/internal/adapter/gemini"
	"github.com/user/broadcast-service/internal/adapter/googlesearch"
	"github.com/user/broadcast-service/internal/adapter/postgres"
	redis_adapter "github.com/user/broadcast-service/internal/adapter/redis"
	"github.com/user/broadcast-service/internal/delivery/http/handler"
	"github.com/user/broadcast-service/internal/delivery/http/router"
	"github.com/user/broadcast-service/internal/formatter"
	"github.com/user/broadcast-service/internal/parser"
	"github.com/user/broadcast-service/internal/repository"
	"github.com/user/broadcast-service/internal/rules"
	"github.com/user/broadcast-service/internal/usecase"
	"github.com/user/broadcast-service/pkg/config"
	"github.com/user/broadcast-service/pkg/logger"
	"github.com/user/broadcast-service/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	logLevel := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger.Init(os.Stdout, logLevel)
	slog.Info("Logger initialized", "level", logLevel.String())

	// --- Metrics ---
	metrics.Init()
	slog.Info("Metrics initialized")

	// --- Database Connections ---
	ctx := context.Background()

	// PostgreSQL
	pgConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	dbpool, err := pgxpool.New(ctx, pgConnString)
	if err != nil {
		slog.Error("Unable to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()
	slog.Info("PostgreSQL connection pool established")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		slog.Error("Unable to connect to Redis", "error", err)
		os.Exit(1)
	}
	slog.Info("Redis connection established")

	// --- Rule Table ---
	engine := rules.Default()
	if cfg.ParserRulesPath != "" {
		engine, err = rules.LoadFile(cfg.ParserRulesPath)
		if err != nil {
			slog.Error("Unable to load parser rule table", "path", cfg.ParserRulesPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Parser rule table loaded", "path", cfg.ParserRulesPath)
	}

	// --- Parsers ---
	generator := gemini.New(cfg.GeminiAPIKeys, cfg.GeminiModel, cfg.GenerativeTimeout)
	pipeline := parser.NewPipeline(
		parser.NewFGBParser(engine),
		parser.NewLittlerazyParser(),
		parser.NewAIFallback(generator, cfg.GenerativeTimeout),
		parser.Completeness{RequireTitle: cfg.RequireTitle, RequirePrice: cfg.RequirePrice},
	)

	// --- Search Backend ---
	// Research is optional; the parse and generate endpoints still work
	// without search credentials.
	var searchRepo repository.SearchRepository
	searchClient, err := googlesearch.New(ctx, cfg.SearchAPIKey, cfg.SearchEngineID)
	if err != nil {
		if !errors.Is(err, repository.ErrSearchUnavailable) {
			slog.Error("Unable to initialize search backend", "error", err)
			os.Exit(1)
		}
		slog.Warn("Search backend not configured, research endpoint disabled")
		searchRepo = unavailableSearch{}
	} else {
		searchRepo = searchClient
	}

	// --- Repositories ---
	broadcastRepo := postgres.NewBroadcastRepo(dbpool)
	seenRepo := redis_adapter.NewSeenRepo(rdb)
	resultCache := redis_adapter.NewResultCache(rdb)

	// --- Use Cases ---
	processor := usecase.NewBroadcastProcessor(
		pipeline,
		formatter.New(cfg.PriceMarkup),
		generator,
		broadcastRepo,
		seenRepo,
		cfg.SeenExpiry,
	)
	researcher := usecase.NewBookResearcher(searchRepo, resultCache, cfg.SearchCacheTTL)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(processor, researcher)
	httpRouter := router.New(apiHandler)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      httpRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Could not listen on port", "port", cfg.ServerPort, "error", err)
		os.Exit(1)
	}
}

// unavailableSearch stands in when no search credentials are configured.
type unavailableSearch struct{}

func (unavailableSearch) Search(ctx context.Context, query string, limit int) ([]repository.RawSearchItem, error) {
	return nil, repository.ErrSearchUnavailable
}
