// Package main is the entry point for the study group API. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	rediscache "github.com/jsamuelsen11/stuti-api/internal/adapters/cache/redis"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/events/kafka"
	adapthttp "github.com/jsamuelsen11/stuti-api/internal/adapters/http"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/middleware"
	memoryrepo "github.com/jsamuelsen11/stuti-api/internal/adapters/persistence/memory"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/persistence/postgres"
	memorystore "github.com/jsamuelsen11/stuti-api/internal/adapters/storage/memory"
	miniostore "github.com/jsamuelsen11/stuti-api/internal/adapters/storage/minio"
	"github.com/jsamuelsen11/stuti-api/internal/app"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
	"github.com/jsamuelsen11/stuti-api/internal/platform/health"
	"github.com/jsamuelsen11/stuti-api/internal/platform/httpclient"
	"github.com/jsamuelsen11/stuti-api/internal/platform/logging"
	"github.com/jsamuelsen11/stuti-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second
	startupTimeout      = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	defer closeResources(injector, cfg, logger)

	registerHealthChecks(injector, cfg, do.MustInvoke[ports.HealthRegistry](injector))

	logger.Info("starting study group api",
		slog.String("profile", profile),
		slog.String("database", cfg.Database.Driver),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("cache", cfg.Cache.Enabled),
		slog.Bool("events", cfg.Events.Enabled),
		slog.Bool("member_api", cfg.Client.Enabled),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := server.Run(ctx)
	if serveErr != nil {
		logger.Error("http server failed", slog.Any("error", serveErr))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return serveErr
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerPersistence(injector, cfg)
	registerStorage(injector, cfg)
	registerOptional(injector, cfg, logger)

	do.Provide(injector, func(i do.Injector) (ports.StudyGroupService, error) {
		repo := do.MustInvoke[ports.StudyGroupRepository](i)
		images := do.MustInvoke[ports.ImageStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := []app.Option{app.WithMetrics(metrics)}
		if cfg.Client.Enabled {
			opts = append(opts, app.WithMemberClient(do.MustInvoke[*acl.MemberClient](i)))
		}
		if cfg.Cache.Enabled {
			opts = append(opts, app.WithCache(do.MustInvoke[*rediscache.Cache](i)))
		}
		if cfg.Events.Enabled {
			opts = append(opts, app.WithEventPublisher(do.MustInvoke[*kafka.Publisher](i)))
		}
		return app.NewStudyGroupService(repo, images, logger, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.StudyGroupHandler, error) {
		svc := do.MustInvoke[ports.StudyGroupService](i)
		return handlers.NewStudyGroupHandler(svc, cfg.Server.MaxUploadBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		sgH := do.MustInvoke[*handlers.StudyGroupHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(sgH, healthH,
			middleware.Authenticate([]byte(cfg.Auth.JWTSecret)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

func registerPersistence(injector *do.RootScope, cfg *config.Config) {
	if cfg.Database.Driver != config.DriverPostgres {
		do.Provide(injector, func(_ do.Injector) (ports.StudyGroupRepository, error) {
			return memoryrepo.NewRepository(), nil
		})
		return
	}

	do.Provide(injector, func(_ do.Injector) (*sql.DB, error) {
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.InitSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StudyGroupRepository, error) {
		db, err := do.Invoke[*sql.DB](i)
		if err != nil {
			return nil, err
		}
		return postgres.NewRepository(db), nil
	})
}

func registerStorage(injector *do.RootScope, cfg *config.Config) {
	if cfg.Storage.Driver != config.DriverMinio {
		do.Provide(injector, func(_ do.Injector) (ports.ImageStore, error) {
			return memorystore.NewStore(cfg.Storage.PublicURL), nil
		})
		return
	}

	do.Provide(injector, func(_ do.Injector) (ports.ImageStore, error) {
		store, err := miniostore.New(cfg.Storage)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	})
}

// registerOptional provides the collaborators that are switched on per
// profile: the member API client, the Redis cache and the Kafka publisher.
func registerOptional(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Client.Enabled {
		do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return httpclient.New(&cfg.Client, acl.MemberAPIName, metrics, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (*acl.MemberClient, error) {
			client := do.MustInvoke[*httpclient.Client](i)
			return acl.NewMemberClient(client, logger), nil
		})
	}

	if cfg.Cache.Enabled {
		do.Provide(injector, func(_ do.Injector) (*goredis.Client, error) {
			return rediscache.NewClient(cfg.Cache), nil
		})

		do.Provide(injector, func(i do.Injector) (*rediscache.Cache, error) {
			rdb := do.MustInvoke[*goredis.Client](i)
			return rediscache.New(rdb, cfg.Cache.TTL), nil
		})
	}

	if cfg.Events.Enabled {
		do.Provide(injector, func(_ do.Injector) (*kafka.Publisher, error) {
			return kafka.NewPublisher(cfg.Events), nil
		})
	}
}

// registerHealthChecks adds every wired component to the readiness probe.
// Storage is critical; the optional integrations only degrade it.
func registerHealthChecks(injector *do.RootScope, cfg *config.Config, registry ports.HealthRegistry) {
	if hc, ok := do.MustInvoke[ports.StudyGroupRepository](injector).(ports.HealthChecker); ok {
		registry.Register(hc, ports.Critical)
	}
	if hc, ok := do.MustInvoke[ports.ImageStore](injector).(ports.HealthChecker); ok {
		registry.Register(hc, ports.Critical)
	}
	if cfg.Client.Enabled {
		registry.Register(do.MustInvoke[*acl.MemberClient](injector), ports.Optional)
	}
	if cfg.Cache.Enabled {
		registry.Register(do.MustInvoke[*rediscache.Cache](injector), ports.Optional)
	}
	if cfg.Events.Enabled {
		registry.Register(do.MustInvoke[*kafka.Publisher](injector), ports.Optional)
	}
}

// closeResources releases connections opened by the providers.
func closeResources(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Events.Enabled {
		if err := do.MustInvoke[*kafka.Publisher](injector).Close(); err != nil {
			logger.Error("kafka writer close error", slog.Any("error", err))
		}
	}
	if cfg.Cache.Enabled {
		if err := do.MustInvoke[*goredis.Client](injector).Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}
	if cfg.Database.Driver == config.DriverPostgres {
		if err := do.MustInvoke[*sql.DB](injector).Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}
}
