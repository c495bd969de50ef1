package telegram

import (
	"context"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/usecase"
)

const requestTimeout = 30 * time.Second

const msgNameAService = "Cuéntame qué servicio necesitas y te lo cotizo al instante. Por ejemplo: \"alfombra 2x3\" o \"cortina mediana\"."

var reOrderInquiry = regexp.MustCompile(`(?i)\b(estado|seguimiento|orden|pedido)\b`)

// processText classifies one customer message and dispatches it: order
// status first, then price resolution, then conversational fallback.
func (h *BotHandler) processText(ctx context.Context, message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	customerID := strconv.FormatInt(message.From.ID, 10)
	text := strings.TrimSpace(message.Text)

	switch {
	case h.isOrderInquiry(text):
		reply, err := h.orderUseCase.StatusReply(ctx, text, customerID)
		if err != nil {
			log.Printf("order lookup failed for %s: %v", customerID, err)
		}
		h.reply(message.Chat.ID, reply)

	case usecase.LooksLikePriceQuery(text) || h.hasPendingQuestion(ctx, customerID):
		reply, err := h.resolverUseCase.ResolveProduct(ctx, text, customerID)
		if err != nil {
			log.Printf("resolution failed for %s: %v", customerID, err)
		}
		h.reply(message.Chat.ID, reply)

	default:
		h.reply(message.Chat.ID, h.smalltalkReply(ctx, customerID, text))
	}
}

// hasPendingQuestion reports whether the assistant's previous turn asked
// this customer a clarifying question. Short answers like "es mediana" have
// no price vocabulary of their own and still belong to the resolver.
func (h *BotHandler) hasPendingQuestion(ctx context.Context, customerID string) bool {
	if h.contextRepo == nil {
		return false
	}
	cctx, err := h.contextRepo.Get(ctx, customerID)
	if err != nil || cctx == nil {
		return false
	}
	return cctx.LastAskedAttribute
}

func (h *BotHandler) isOrderInquiry(text string) bool {
	if h.orderUseCase == nil {
		return false
	}
	return reOrderInquiry.MatchString(text)
}

// smalltalkReply hands non-price conversation to the language model with
// the customer's recent turns. Falls back to a fixed prompt when the model
// is unavailable.
func (h *BotHandler) smalltalkReply(ctx context.Context, customerID, text string) string {
	if h.aiRepo == nil {
		return msgNameAService
	}

	var history []entity.ConversationTurn
	if h.contextRepo != nil {
		if cctx, err := h.contextRepo.Get(ctx, customerID); err == nil && cctx != nil {
			history = cctx.Turns
		}
	}

	reply, err := h.aiRepo.GenerateReply(ctx, customerID, text, history)
	if err != nil {
		log.Printf("smalltalk failed for %s: %v", customerID, err)
		return msgNameAService
	}
	return reply
}
