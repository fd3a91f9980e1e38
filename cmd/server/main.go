package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"golang.org/x/sync/errgroup"

	apphandler "certflow/internal/application/handler"
	appstore "certflow/internal/application/store"
	appmemory "certflow/internal/application/store/memory"
	apppostgres "certflow/internal/application/store/postgres"
	"certflow/internal/auth"
	cataloghandler "certflow/internal/catalog/handler"
	catalogstore "certflow/internal/catalog/store"
	catalogmemory "certflow/internal/catalog/store/memory"
	catalogpostgres "certflow/internal/catalog/store/postgres"
	certhttp "certflow/internal/http"
	"certflow/internal/platform/config"
	"certflow/internal/platform/httpserver"
	"certflow/internal/platform/logger"
	"certflow/internal/platform/metrics"
	platpostgres "certflow/internal/platform/postgres"
	platredis "certflow/internal/platform/redis"
	prefhandler "certflow/internal/preferences/handler"
	prefstore "certflow/internal/preferences/store"
	prefmemory "certflow/internal/preferences/store/memory"
	prefredis "certflow/internal/preferences/store/redis"
	profilehandler "certflow/internal/profile/handler"
	profileservice "certflow/internal/profile/service"
	profilestore "certflow/internal/profile/store"
	profilememory "certflow/internal/profile/store/memory"
	profilepostgres "certflow/internal/profile/store/postgres"
	wizardhandler "certflow/internal/wizard/handler"
	wizardservice "certflow/internal/wizard/service"
	sessionstore "certflow/internal/wizard/store/session"
	sessionmemory "certflow/internal/wizard/store/session/memory"
	sessionredis "certflow/internal/wizard/store/session/redis"
	"certflow/pkg/platform/audit"
	auditmemory "certflow/pkg/platform/audit/store/memory"
	auditpostgres "certflow/pkg/platform/audit/store/postgres"
	"certflow/pkg/platform/audit/publisher"
	"certflow/pkg/platform/audit/relay"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Backends are optional: an empty DSN or URL selects the in-memory
	// fallback so the server runs standalone in development.
	pg, err := platpostgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pg.Close()

	redisClient, err := platredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var (
		sessions     sessionstore.Store
		prefs        prefstore.PreferenceStore
		profiles     profilestore.ProfileStore
		catalog      catalogstore.CatalogStore
		applications appstore.ApplicationStore
		auditStore   audit.Store
		checks       []certhttp.HealthCheck
	)

	if redisClient != nil {
		sessions = sessionredis.NewRedisStore(redisClient)
		prefs = prefredis.NewRedisStore(redisClient, log)
		checks = append(checks, certhttp.HealthCheck{Name: "redis", Check: redisClient.Health})
	} else {
		log.Warn("redis not configured, using in-memory session and preference stores")
		sessions = sessionmemory.NewInMemoryStore()
		prefs = prefmemory.NewInMemoryStore()
	}

	if pg != nil {
		if err := platpostgres.EnsureSchema(ctx, pg.Pool); err != nil {
			return err
		}
		profiles = profilepostgres.NewPostgresStore(pg.Pool)
		catalog = catalogpostgres.NewPostgresStore(pg.Pool)
		applications = apppostgres.NewPostgresStore(pg.Pool)
		auditStore = auditpostgres.New(pg.DB)
		checks = append(checks, certhttp.HealthCheck{Name: "postgres", Check: pg.Pool.Ping})
	} else {
		log.Warn("postgres not configured, using in-memory stores and seed catalog")
		profiles = profilememory.NewInMemoryStore()
		catalog = catalogmemory.NewSeededStore()
		applications = appmemory.NewInMemoryStore()
		auditStore = auditmemory.NewInMemoryStore()
	}

	auditPub := publisher.NewPublisher(auditStore,
		publisher.WithAsyncBuffer(256),
		publisher.WithLogger(log))
	defer auditPub.Close()

	m := metrics.New()

	wizardSvc := wizardservice.NewService(sessions, prefs, profiles, catalog, applications,
		wizardservice.WithLogger(log),
		wizardservice.WithAuditPublisher(auditPub),
		wizardservice.WithMetrics(m))
	profileSvc := profileservice.NewService(profiles,
		profileservice.WithLogger(log),
		profileservice.WithAuditPublisher(auditPub))

	router := certhttp.NewRouter(certhttp.Config{
		Logger:    log,
		Validator: auth.NewJWTValidator(cfg.JWTSigningKey),
		Handlers: []certhttp.RouteRegistrar{
			wizardhandler.NewHandler(wizardSvc, log),
			cataloghandler.NewHandler(catalog, sessions, log),
			profilehandler.NewHandler(profileSvc, log),
			prefhandler.NewHandler(prefs, log),
			apphandler.NewHandler(applications, log),
		},
		HealthChecks: checks,
	})

	server := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("server listening", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if pg != nil && len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := kgo.NewClient(kgo.SeedBrokers(cfg.Kafka.Brokers...))
		if err != nil {
			return err
		}
		defer kafkaClient.Close()

		if err := relay.EnsureTopic(ctx, kafkaClient, cfg.Kafka.AuditTopic, 3); err != nil {
			return err
		}
		auditRelay := relay.New(pg.DB, kafkaClient, cfg.Kafka.AuditTopic, relay.WithLogger(log))
		group.Go(func() error {
			log.Info("audit relay started", slog.String("topic", cfg.Kafka.AuditTopic))
			return auditRelay.Run(ctx)
		})
	} else {
		log.Warn("kafka not configured, audit events stay in the local store")
	}

	return group.Wait()
}
