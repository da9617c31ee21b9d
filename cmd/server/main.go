package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/api"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/assistant"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/config"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/metrics"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/seed"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/sessionstore"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func newSessionStore(cfg config.Config) (sessionstore.Store, func(), error) {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		logger.Info().Msgf("Using Redis session store at %s", cfg.RedisAddr)
		return sessionstore.NewRedis(rdb, cfg.SessionTTL), func() { _ = rdb.Close() }, nil
	}

	mem := sessionstore.NewMemory(
		sessionstore.WithDefaultTTL(cfg.SessionTTL),
		sessionstore.WithPruneHook(metrics.RecordPruned),
	)
	if err := mem.StartPruning(cfg.SessionPruneInterval); err != nil {
		return nil, nil, err
	}
	logger.Info().Msgf("Using in-memory session store, pruning every %s", cfg.SessionPruneInterval)
	return mem, mem.Stop, nil
}

func newPublisher(cfg config.Config) (events.Publisher, func()) {
	if !cfg.EventsEnabled() {
		logger.Info().Msg("KAFKA_BROKERS not set, domain events disabled")
		return events.Nop{}, func() {}
	}
	kafkaWriter := config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
	return events.NewKafkaPublisher(kafkaWriter), func() { _ = kafkaWriter.Close() }
}

func newAssistant(cfg config.Config) assistant.Assistant {
	if cfg.OpenAIAPIKey == "" {
		logger.Info().Msg("OPENAI_API_KEY not set, using offline assistant")
		return assistant.Offline{}
	}
	return assistant.NewOpenAI(cfg.OpenAIAPIKey,
		assistant.WithModel(cfg.OpenAIModel),
		assistant.WithBaseURL(cfg.OpenAIBaseURL),
	)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store := repository.New()
	if cfg.SeedSampleData {
		if err := seed.Sample(store, time.Now()); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed sample data")
		}
	}

	sessions, closeSessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up session store")
	}
	defer closeSessions()

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	helper := newAssistant(cfg)
	resolver := service.NewResolver(store)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(api.RateLimiter(cfg.RateLimit, cfg.RateBurst))

	api.RegisterRoutes(e, api.Services{
		Auth:         service.NewAuthService(store, sessions, cfg.SessionSecret, cfg.SessionTTL),
		Catalog:      service.NewCatalogService(store),
		Mood:         service.NewMoodService(store, helper, publisher),
		Cart:         service.NewCartService(store, resolver, publisher),
		Booking:      service.NewBookingService(store, resolver, publisher),
		GroupSession: service.NewGroupSessionService(store, resolver, publisher),
		Chat:         service.NewChatService(store, helper),
		Admins:       cfg.AdminUsernames,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error shutting down server")
	}
}
