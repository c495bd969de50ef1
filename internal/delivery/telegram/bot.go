package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
	"github.com/yourusername/storefront-assistant-bot/internal/usecase"
)

// BotHandler wires Telegram updates to the use cases.
type BotHandler struct {
	bot *tgbotapi.BotAPI

	resolverUseCase usecase.ResolverUseCase
	orderUseCase    usecase.OrderUseCase
	aiRepo          repository.AIRepository
	contextRepo     repository.ContextRepository
	catalogRepo     repository.CatalogRepository

	contextTTL      time.Duration
	cleanupInterval time.Duration

	workerPool *workerPool
}

// NewBotHandler creates the bot and its worker pool. aiRepo may be nil; the
// bot then answers smalltalk with a fixed prompt to name a service.
func NewBotHandler(
	token string,
	resolverUseCase usecase.ResolverUseCase,
	orderUseCase usecase.OrderUseCase,
	aiRepo repository.AIRepository,
	contextRepo repository.ContextRepository,
	catalogRepo repository.CatalogRepository,
	contextTTL time.Duration,
	cleanupInterval time.Duration,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := &BotHandler{
		bot:             bot,
		resolverUseCase: resolverUseCase,
		orderUseCase:    orderUseCase,
		aiRepo:          aiRepo,
		contextRepo:     contextRepo,
		catalogRepo:     catalogRepo,
		contextTTL:      contextTTL,
		cleanupInterval: cleanupInterval,
	}
	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}
