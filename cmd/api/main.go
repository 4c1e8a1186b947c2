package main

import (
	"context"
	"fmt"

	"github.com/abhishek622/careercraft/internal/ai"
	"github.com/abhishek622/careercraft/internal/ats"
	"github.com/abhishek622/careercraft/internal/cache"
	"github.com/abhishek622/careercraft/internal/chat"
	"github.com/abhishek622/careercraft/internal/config"
	"github.com/abhishek622/careercraft/internal/database"
	"github.com/abhishek622/careercraft/internal/fetcher"
	"github.com/abhishek622/careercraft/internal/handler"
	"github.com/abhishek622/careercraft/internal/history"
	"github.com/abhishek622/careercraft/internal/learning"
	"github.com/abhishek622/careercraft/internal/logger"
	"github.com/abhishek622/careercraft/internal/repository"
	"github.com/abhishek622/careercraft/internal/validate"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Redis   *redis.Client
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Application
}

func main() {
	ctx := context.Background()
	cfg := config.MustLoad()

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	if err := validate.RegisterGin(); err != nil {
		sugar.Fatal(err)
	}

	app := &application{Logger: log, Config: cfg}
	defer app.close()

	if err := app.connect(ctx); err != nil {
		sugar.Fatal(err)
	}

	gen, err := ai.New(ctx, cfg.AI, log)
	if err != nil {
		sugar.Fatal(err)
	}

	store, err := app.historyStore(ctx)
	if err != nil {
		sugar.Fatal(err)
	}

	catalog, err := learning.DefaultCatalog()
	if err != nil {
		sugar.Fatal(err)
	}

	opts := fetcher.Options{
		Timeout:      cfg.Scraper.Timeout,
		UserAgent:    cfg.Scraper.UserAgent,
		MaxBodyBytes: cfg.Scraper.MaxBodyBytes,
		Structured:   cfg.Scraper.Structured,
	}
	if app.Redis != nil && cfg.Scraper.CacheTTL > 0 {
		opts.Cache = cache.NewScrapeCache(app.Redis, cfg.Scraper.CacheTTL, log)
	}

	app.Handler = &handler.Application{
		Logger:    log,
		Scorer:    ats.NewScorer(gen, log),
		Assistant: chat.NewAssistant(gen, cfg.AI.ChatTemperature),
		Fetcher:   fetcher.NewFetcher(opts, log),
		History:   history.NewLogger(store, log),
		Catalog:   catalog,
		AutoLog:   cfg.History.AutoLog,
		Env:       cfg.Env,
		Provider:  cfg.AI.Provider,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// connect opens the Redis and Postgres connections the configuration asks for.
func (app *application) connect(ctx context.Context) error {
	cfg := app.Config
	if cfg.NeedsRedis() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return err
		}
		app.Redis = rdb
		app.Logger.Info("redis connected")
	}

	if cfg.History.Backend == "postgres" {
		pool, err := database.Connect(ctx, cfg.DB)
		if err != nil {
			return err
		}
		app.DB = pool
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		app.Logger.Info("postgres connected")
	}
	return nil
}

func (app *application) historyStore(ctx context.Context) (history.Store, error) {
	key := app.Config.History.Key
	switch app.Config.History.Backend {
	case "memory":
		return history.NewMemoryStore(key), nil
	case "redis":
		return history.NewRedisStore(app.Redis, key), nil
	case "postgres":
		return repository.NewRepository(app.DB, key).History, nil
	}
	return nil, fmt.Errorf("unknown history backend %q", app.Config.History.Backend)
}

func (app *application) close() {
	if app.Redis != nil {
		_ = app.Redis.Close()
	}
	if app.DB != nil {
		app.DB.Close()
	}
}
