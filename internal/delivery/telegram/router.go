package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start runs the update loop until the context is cancelled.
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)
	go h.cleanupContexts(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.workerPool.shutdown()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Document != nil {
		go h.handleDocumentMessage(ctx, message)
		return
	}
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		go h.handleCommand(ctx, message)
		return
	}
	if strings.TrimSpace(message.Text) == "" {
		return
	}
	h.workerPool.submit(ctx, message)
}

func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.reply(message.Chat.ID,
			"¡Hola! Soy el asistente de la lavandería. Puedo cotizar servicios (por ejemplo: \"alfombra 2x3\") y revisar el estado de tu orden.")
	case "ayuda", "help":
		h.reply(message.Chat.ID,
			"Escríbeme el servicio y sus medidas (\"alfombra 2x3\", \"cortina mediana\") para cotizar, o \"estado orden 12345\" para revisar una orden.")
	default:
		h.reply(message.Chat.ID, "No conozco ese comando. Prueba /ayuda.")
	}
}

// cleanupContexts evicts idle customer contexts on a fixed interval.
func (h *BotHandler) cleanupContexts(ctx context.Context) {
	if h.contextRepo == nil || h.cleanupInterval <= 0 {
		return
	}
	ticker := time.NewTicker(h.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := h.contextRepo.DeleteExpired(ctx, h.contextTTL)
			if err != nil {
				log.Printf("context cleanup failed: %v", err)
				continue
			}
			if removed > 0 {
				log.Printf("context cleanup: %d expired", removed)
			}
		}
	}
}
