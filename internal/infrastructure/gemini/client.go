package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates the conversational model used for messages that
// are neither price queries nor order lookups. Prices never come from here;
// the instruction forbids quoting amounts so the catalog stays the single
// source of truth.
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(constants.GeminiModelName)
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(`Eres el asistente de una lavandería chilena. Atiendes clientes por chat en español, con tono cercano y profesional.

REGLAS:
- NUNCA inventes ni menciones precios, montos ni valores. Si el cliente pregunta por un precio, pídele que indique el servicio y sus medidas (por ejemplo "alfombra 2x3") para cotizarlo.
- Para el estado de una orden, pídele el número de orden.
- Responde breve: una o dos frases.
- No uses emojis.`),
		},
	}

	return &geminiClient{
		client: client,
		model:  model,
	}, nil
}

func (g *geminiClient) GenerateReply(ctx context.Context, customerID, message string, history []entity.ConversationTurn) (string, error) {
	var parts []genai.Part
	for _, turn := range history {
		switch turn.Speaker {
		case entity.SpeakerCustomer:
			parts = append(parts, genai.Text(fmt.Sprintf("Cliente: %s", turn.Text)))
		case entity.SpeakerAssistant:
			parts = append(parts, genai.Text(fmt.Sprintf("Tú: %s", turn.Text)))
		}
	}
	parts = append(parts, genai.Text(message))

	var lastErr error
	for attempt := 1; attempt <= constants.MaxRetries; attempt++ {
		resp, err := g.model.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			log.Printf("gemini request failed (attempt %d/%d): %v", attempt, constants.MaxRetries, err)
			if attempt < constants.MaxRetries {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(constants.RetryDelay * time.Second):
				}
			}
			continue
		}
		if text := extractText(resp); text != "" {
			return text, nil
		}
		lastErr = fmt.Errorf("no response candidates")
	}
	return "", fmt.Errorf("gemini reply for %s: %w", customerID, lastErr)
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
