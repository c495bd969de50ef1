package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/yourusername/storefront-assistant-bot/config"
	"github.com/yourusername/storefront-assistant-bot/internal/delivery/telegram"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
	"github.com/yourusername/storefront-assistant-bot/internal/infrastructure/gemini"
	"github.com/yourusername/storefront-assistant-bot/internal/infrastructure/storage"
	"github.com/yourusername/storefront-assistant-bot/internal/usecase"
	"github.com/yourusername/storefront-assistant-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	logger.Init()
	logger.InfoLogger.Println("starting up...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	if cfg.AllowEmptySecrets {
		missing := []string{}
		if isEmptyOrDisabled(cfg.TelegramToken) {
			missing = append(missing, "TELEGRAM_BOT_TOKEN")
		}
		if isEmptyOrDisabled(cfg.GeminiAPIKey) {
			missing = append(missing, "GEMINI_API_KEY")
		}
		if len(missing) > 0 {
			logger.InfoLogger.Printf("missing secrets (%s), waiting for shutdown signal", strings.Join(missing, ", "))
			<-sigChan
			return
		}
	}

	// Repositories: Postgres when a DSN is configured, in-memory otherwise.
	var (
		catalogRepo repository.CatalogRepository
		contextRepo repository.ContextRepository
		orderRepo   repository.OrderRepository
	)
	usecase.SetCentimeterHeuristic(cfg.CMHeuristic)

	if cfg.PostgresDSN != "" {
		db, err := storage.OpenPostgresWithRetry(cfg.PostgresDSN,
			cfg.PostgresConnectAttempts,
			time.Duration(cfg.PostgresRetrySeconds)*time.Second)
		if err != nil {
			log.Fatalf("postgres connection failed: %v", err)
		}
		catalogRepo, err = storage.NewPostgresCatalogRepository(db, cfg.Tenant)
		if err != nil {
			log.Fatalf("catalog store init failed: %v", err)
		}
		contextRepo, err = storage.NewPostgresContextRepository(db)
		if err != nil {
			log.Fatalf("context store init failed: %v", err)
		}
		orderRepo, err = storage.NewPostgresOrderRepository(db)
		if err != nil {
			log.Fatalf("order store init failed: %v", err)
		}
		logger.InfoLogger.Println("repositories ready (postgres)")
	} else {
		catalogRepo = storage.NewMemoryCatalogRepository()
		contextRepo = storage.NewMemoryContextRepository()
		orderRepo = storage.NewMemoryOrderRepository()
		logger.InfoLogger.Println("repositories ready (in-memory)")
	}

	aiRepo, err := gemini.NewGeminiClient(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("gemini client init failed: %v", err)
	}
	logger.InfoLogger.Println("gemini client ready")

	resolverUseCase := usecase.NewResolverUseCase(catalogRepo, contextRepo, usecase.ResolverConfig{
		MatchEpsilon:         cfg.MatchEpsilon,
		ShortReplyMaxWords:   cfg.ShortReplyMaxWords,
		MaxTurns:             cfg.MaxTurns,
		EnableStaticFallback: cfg.EnableStaticFallback,
	})
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	logger.InfoLogger.Println("use cases ready")

	botHandler, err := telegram.NewBotHandler(
		cfg.TelegramToken,
		resolverUseCase,
		orderUseCase,
		aiRepo,
		contextRepo,
		catalogRepo,
		time.Duration(cfg.ContextTTLHours)*time.Hour,
		time.Duration(cfg.CleanupMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatalf("bot handler init failed: %v", err)
	}
	logger.InfoLogger.Printf("telegram bot ready: @%s", botHandler.GetBotUsername())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := botHandler.Start(ctx); err != nil && err != context.Canceled {
			logger.ErrorLogger.Printf("bot error: %v", err)
		}
	}()

	logger.InfoLogger.Println("bot is running, press Ctrl+C to stop")

	<-sigChan
	logger.InfoLogger.Println("shutdown signal received")

	cancel()
	logger.InfoLogger.Println("bot stopped")
}

func initDefaultTimezone() {
	const tzName = "America/Santiago"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, -4*60*60)
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
