package main

import (
	"context"
	"time"

	"github.com/abhishek622/interviewPrep/internal/agent"
	"github.com/abhishek622/interviewPrep/internal/auth"
	"github.com/abhishek622/interviewPrep/internal/cache"
	"github.com/abhishek622/interviewPrep/internal/catalog"
	"github.com/abhishek622/interviewPrep/internal/config"
	"github.com/abhishek622/interviewPrep/internal/credential"
	"github.com/abhishek622/interviewPrep/internal/database"
	"github.com/abhishek622/interviewPrep/internal/fetcher"
	"github.com/abhishek622/interviewPrep/internal/grading"
	"github.com/abhishek622/interviewPrep/internal/handler"
	"github.com/abhishek622/interviewPrep/internal/loader"
	"github.com/abhishek622/interviewPrep/internal/logger"
	"github.com/abhishek622/interviewPrep/internal/openai"
	"github.com/abhishek622/interviewPrep/internal/repository"
	"github.com/abhishek622/interviewPrep/internal/session"
	"github.com/abhishek622/interviewPrep/pkg"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	Config   *config.Config
	Gate     *auth.Gate
	Sessions *session.Registry
	Handler  *handler.Handler
	limiter  *ipLimiter
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	app := &application{Logger: log, Config: cfg}

	source, err := app.catalogSource(ctx)
	if err != nil {
		sugar.Fatal(err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	cat := catalog.New(loader.New(source, cfg.Catalog.Encoded, log))
	if err := cat.Refresh(ctx); err != nil {
		// the banner is served with every list response; keep running
		log.Error("catalog: initial load failed", zap.Error(err))
	}
	log.Info("catalog: loaded",
		zap.Int("questions", len(cat.Questions())),
		zap.Int("interviews", len(cat.Interviews())),
	)

	tokens, err := app.credentialStore(ctx)
	if err != nil {
		sugar.Fatal(err)
	}
	if app.Redis != nil {
		defer app.Redis.Close()
	}

	gate, err := auth.NewGate(cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	if err != nil {
		sugar.Fatal(err)
	}
	app.Gate = gate

	llm := openai.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Timeout)
	evaluator := grading.NewEvaluator(llm, log)

	var grader session.Grader = evaluator
	if cfg.Grading.URL != "" {
		grader = grading.NewClient(cfg.Grading.URL, cfg.Grading.Timeout)
		log.Info("grading: using remote endpoint", zap.String("url", cfg.Grading.URL))
	}

	app.Sessions = session.NewRegistry(func() *session.Controller {
		return session.NewController(cat, grader, session.SystemClock{}, log)
	})

	app.Handler = &handler.Handler{
		Logger:    log,
		Gate:      gate,
		Catalog:   cat,
		Sessions:  app.Sessions,
		Tokens:    tokens,
		Evaluator: evaluator,
		Agent:     agent.New(llm, fetcher.NewFetcher(cfg.LLM.ScrapeAgent, 30*time.Second), cfg.LLM.AgentModel, log),
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

// catalogSource picks Postgres, a remote URL or the static files, in that order.
func (app *application) catalogSource(ctx context.Context) (loader.Source, error) {
	cfg := app.Config
	switch {
	case cfg.DB.DSN != "":
		pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxConns)
		if err != nil {
			return nil, err
		}
		if cfg.DB.Migrate {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		app.DB = pool
		app.Logger.Info("catalog: using postgres")
		return repository.NewRepository(pool), nil
	case cfg.Catalog.QuestionsURL != "":
		app.Logger.Info("catalog: using remote urls", zap.String("questions", cfg.Catalog.QuestionsURL))
		return loader.NewHTTPSource(cfg.Catalog.QuestionsURL, cfg.Catalog.InterviewsURL, cfg.Catalog.FetchTimeout), nil
	default:
		app.Logger.Info("catalog: using static files", zap.String("dir", cfg.Catalog.StaticDir))
		return loader.NewFileSource(cfg.QuestionsPath(), cfg.InterviewsPath()), nil
	}
}

// credentialStore keeps grading tokens in redis when configured.
func (app *application) credentialStore(ctx context.Context) (credential.Store, error) {
	cfg := app.Config
	if cfg.Redis.Addr == "" {
		app.Logger.Info("credentials: using in-memory store")
		return credential.NewMemoryStore(cfg.Auth.SessionTTL), nil
	}

	crypto, err := pkg.NewCrypto(cfg.Crypto.Secret)
	if err != nil {
		return nil, err
	}
	rdb, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	app.Redis = rdb
	app.Logger.Info("credentials: using redis", zap.String("addr", cfg.Redis.Addr))
	return credential.NewRedisStore(rdb, crypto, cfg.Auth.SessionTTL), nil
}
