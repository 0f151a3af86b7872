package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/forum/db/migrations"
	"github.com/dmitrymomot/forum/modules/account"
	"github.com/dmitrymomot/forum/pkg/auth"
	"github.com/dmitrymomot/forum/pkg/config"
	"github.com/dmitrymomot/forum/pkg/cryptography"
	"github.com/dmitrymomot/forum/pkg/httpserver"
	"github.com/dmitrymomot/forum/pkg/logger"
	"github.com/dmitrymomot/forum/pkg/mongo"
	"github.com/dmitrymomot/forum/pkg/pg"
	"github.com/dmitrymomot/forum/pkg/ratelimiter"
	"github.com/dmitrymomot/forum/pkg/redis"
	"github.com/dmitrymomot/forum/pkg/requestid"
	"github.com/dmitrymomot/forum/pkg/userstore"
)

type appConfig struct {
	StorageDriver  string        `env:"STORAGE_DRIVER" envDefault:"postgres"`
	RateLimitStore string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	ReadyTimeout   time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("forum stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log, err := logger.NewFromConfig(logCfg, logger.WithContextExtractors(requestid.LogExtractor))
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	var appCfg appConfig
	if err := config.Load(&appCfg); err != nil {
		return err
	}

	checks := map[string]httpserver.Check{}
	var cleanup []func()
	defer func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}()

	users, err := openUserStore(ctx, appCfg.StorageDriver, log, checks, &cleanup)
	if err != nil {
		return err
	}

	loginLimiter, err := newLoginLimiter(ctx, appCfg.RateLimitStore, checks, &cleanup)
	if err != nil {
		return err
	}

	var cryptoCfg cryptography.Config
	if err := config.Load(&cryptoCfg); err != nil {
		return err
	}
	hasher, err := cryptography.NewHasher(cryptoCfg)
	if err != nil {
		return err
	}
	tokens, err := cryptography.NewTokenService(cryptoCfg)
	if err != nil {
		return err
	}
	encoder, err := cryptography.NewJWTEncoder(tokens, cryptography.WithTokenTTL(cryptoCfg.JWTTTL))
	if err != nil {
		return err
	}

	authenticate := auth.NewAuthenticateUseCase(users, hasher, encoder,
		auth.WithAuthenticateLogger(log))
	register := auth.NewRegisterUseCase(users, hasher,
		auth.WithRegisterLogger(log))

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(log, appCfg.ReadyTimeout, checks))
	r.Mount("/", account.Router(account.RouterOptions{
		Password: account.NewPasswordService(authenticate, register,
			account.WithLoginLimiter(loginLimiter),
			account.WithPasswordLogger(log),
		),
		Profile: account.NewProfileService(tokens),
	}))

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	log.InfoContext(ctx, "starting forum",
		slog.String("addr", srvCfg.Addr),
		slog.String("storage", appCfg.StorageDriver),
		slog.String("rate_limit_store", appCfg.RateLimitStore),
	)

	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}

func openUserStore(ctx context.Context, driver string, log *slog.Logger, checks map[string]httpserver.Check, cleanup *[]func()) (auth.UserRepository, error) {
	switch driver {
	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		*cleanup = append(*cleanup, pool.Close)
		if err := pg.Migrate(ctx, pool, migrations.FS, log); err != nil {
			return nil, err
		}
		checks["postgres"] = pg.Healthcheck(pool)
		return userstore.NewPostgres(pool), nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		*cleanup = append(*cleanup, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		})
		checks["mongo"] = mongo.Healthcheck(client)
		return userstore.NewMongo(ctx, client.Database(cfg.Database))

	case "memory":
		log.WarnContext(ctx, "using in-memory user storage, accounts are lost on restart")
		return userstore.NewMemory(), nil

	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
	}
}

func newLoginLimiter(ctx context.Context, storeName string, checks map[string]httpserver.Check, cleanup *[]func()) (*ratelimiter.Bucket, error) {
	var cfg ratelimiter.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	var store ratelimiter.Store
	switch storeName {
	case "memory":
		mem := ratelimiter.NewMemoryStore()
		*cleanup = append(*cleanup, mem.Close)
		store = mem

	case "redis":
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		*cleanup = append(*cleanup, func() { _ = client.Close() })
		checks["redis"] = redis.Healthcheck(client)
		store = ratelimiter.NewRedisStore(client)

	default:
		return nil, fmt.Errorf("unsupported RATE_LIMIT_STORE %q", storeName)
	}

	return ratelimiter.NewBucket(store, cfg)
}
