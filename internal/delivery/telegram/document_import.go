package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/storefront-assistant-bot/internal/infrastructure/parser"
)

// handleDocumentMessage imports an uploaded price-list workbook into the
// catalog. Each import appends new item versions; older prices stay in the
// table but stop being visible.
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	doc := message.Document
	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".xlsx") {
		h.reply(message.Chat.ID, "Solo puedo importar listas de precios en formato .xlsx.")
		return
	}

	path, err := h.downloadDocument(doc)
	if err != nil {
		log.Printf("price list download failed: %v", err)
		h.reply(message.Chat.ID, "No pude descargar el archivo. Inténtalo de nuevo.")
		return
	}
	defer os.Remove(path)

	items, err := parser.ParseCatalogFile(path)
	if err != nil {
		log.Printf("price list parse failed: %v", err)
		h.reply(message.Chat.ID, "No pude leer la lista de precios. Revisa las columnas: NOMBRE, PRECIO.")
		return
	}
	if err := h.catalogRepo.SaveMany(ctx, items); err != nil {
		log.Printf("price list save failed: %v", err)
		h.reply(message.Chat.ID, "No pude guardar la lista de precios. Inténtalo más tarde.")
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("Lista de precios importada: %d servicios.", len(items)))
}

func (h *BotHandler) downloadDocument(doc *tgbotapi.Document) (string, error) {
	url, err := h.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		return "", err
	}
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download status %s", resp.Status)
	}

	out, err := os.CreateTemp("", "pricelist-*"+filepath.Ext(doc.FileName))
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
