package repository

import (
	"context"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// AIRepository phrases conversational replies for messages that are neither
// price queries nor order lookups. The price resolver never depends on it.
type AIRepository interface {
	// GenerateReply answers a free-form customer message using the recent
	// conversation turns as context.
	GenerateReply(ctx context.Context, customerID, message string, history []entity.ConversationTurn) (string, error)
}
