package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/repository"
)

// ResolverUseCase is the single entry point the orchestrator calls. It has
// no knowledge of how or when it is invoked.
type ResolverUseCase interface {
	// ResolveProduct turns a free-form customer message into a priced
	// answer, a clarifying question, or a fixed fallback sentence. The
	// returned error is non-nil only for a store failure that survived the
	// retry; the string is user-ready in every case.
	ResolveProduct(ctx context.Context, text, customerID string) (string, error)
}

// ResolverConfig carries the tunables the resolution pipeline depends on.
// Zero values select the package defaults.
type ResolverConfig struct {
	MatchEpsilon         float64
	ShortReplyMaxWords   int
	MaxTurns             int
	EnableStaticFallback bool
}

type resolverUseCase struct {
	matcher     *CatalogMatcher
	contextRepo repository.ContextRepository

	shortReplyMaxWords   int
	maxTurns             int
	enableStaticFallback bool
}

// serviceKeywords are the category words a customer message is scanned for.
// Finding one overwrites the remembered service for that customer.
var serviceKeywords = []string{
	"alfombra", "tapete", "cortina", "poltrona", "silla", "butaca",
	"sofá", "sofa", "cobertor", "frazada", "coche", "carrito",
	"chaqueta", "casaca", "pantalon", "blusa", "camisa",
}

// confirmWords mark a short message as an answer to a pending question
// ("esa", "sí") even when it names no attribute.
var confirmWords = []string{"esa", "ese", "eso", "sí", "si", "dale", "ok"}

// attributeQuestionMarkers flag an outgoing reply as a clarifying question
// whose answer the next customer turn may ellipse.
var attributeQuestionMarkers = []string{"tamaño", "medida", "material", "qué tipo"}

// NewResolverUseCase wires the resolution pipeline.
func NewResolverUseCase(
	catalogRepo repository.CatalogRepository,
	contextRepo repository.ContextRepository,
	cfg ResolverConfig,
) ResolverUseCase {
	if cfg.ShortReplyMaxWords <= 0 {
		cfg.ShortReplyMaxWords = constants.DefaultShortReplyMaxWords
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = constants.DefaultMaxTurns
	}
	return &resolverUseCase{
		matcher:              NewCatalogMatcher(catalogRepo, cfg.MatchEpsilon),
		contextRepo:          contextRepo,
		shortReplyMaxWords:   cfg.ShortReplyMaxWords,
		maxTurns:             cfg.MaxTurns,
		enableStaticFallback: cfg.EnableStaticFallback,
	}
}

func (u *resolverUseCase) ResolveProduct(ctx context.Context, text, customerID string) (string, error) {
	cctx, err := u.contextRepo.Get(ctx, customerID)
	if err != nil {
		log.Printf("context load failed for %s: %v", customerID, err)
	}
	if cctx == nil {
		cctx = &entity.CustomerContext{CustomerID: customerID}
	}

	query := strings.TrimSpace(text)
	service := detectService(query)
	if service != "" && service != cctx.LastService {
		cctx.LastService = service
		cctx.Slots = entity.VariantSlots{}
	}
	updateSlots(cctx, query)

	// Context carryover: a short elliptical reply right after an attribute
	// question is re-read as "<lastService> <attribute>". The pending flag
	// is consumed either way.
	if service == "" && cctx.LastAskedAttribute && cctx.LastService != "" && u.isEllipticalReply(query) {
		query = buildContextQuery(cctx, query)
		cctx.LastAskedAttribute = false
	}

	measure := ParseMeasurement(query)
	terms := ExpandTerms(query)

	result, err := u.matcher.Match(ctx, query, terms, measure)
	if err != nil {
		reply := FormatTransientError()
		if u.enableStaticFallback {
			if alt, ok := fallbackReply(query); ok {
				reply = alt
			}
		}
		u.finishTurn(ctx, cctx, text, reply)
		return reply, err
	}

	var reply string
	switch result.Kind {
	case entity.MatchSingle:
		reply = FormatItem(result.Item)
	case entity.MatchMultiple:
		d := Disambiguate(query, result.Candidates)
		if d.Resolved != nil {
			reply = FormatItem(*d.Resolved)
		} else {
			reply = FormatCandidates(d.Candidates, QuestionForAxis(d.Axis))
			rememberQuestionService(cctx, d.Candidates)
		}
	default:
		reply = FormatNotFound()
	}

	u.finishTurn(ctx, cctx, text, reply)
	return reply, nil
}

// finishTurn records both turns, re-arms the pending-question flag when the
// outgoing reply asks for an attribute, and persists the context.
func (u *resolverUseCase) finishTurn(ctx context.Context, cctx *entity.CustomerContext, incoming, outgoing string) {
	cctx.LastAskedAttribute = containsAttributeQuestion(outgoing)

	now := time.Now()
	cctx.AppendTurn(entity.ConversationTurn{
		ID:        uuid.New().String(),
		Speaker:   entity.SpeakerCustomer,
		Text:      incoming,
		Timestamp: now,
	}, u.maxTurns)
	cctx.AppendTurn(entity.ConversationTurn{
		ID:        uuid.New().String(),
		Speaker:   entity.SpeakerAssistant,
		Text:      outgoing,
		Timestamp: now,
	}, u.maxTurns)
	cctx.LastUsed = now

	if err := u.contextRepo.Save(ctx, cctx); err != nil {
		log.Printf("context save failed for %s: %v", cctx.CustomerID, err)
	}
}

// isEllipticalReply applies the short-or-keyword heuristic: few words, a
// confirmation/pronoun word, or a bare attribute word.
func (u *resolverUseCase) isEllipticalReply(msg string) bool {
	fields := strings.Fields(strings.ToLower(msg))
	if len(fields) > 0 && len(fields) < u.shortReplyMaxWords {
		return true
	}
	for _, f := range fields {
		for _, w := range confirmWords {
			if f == w {
				return true
			}
		}
	}
	lower := strings.ToLower(msg)
	return firstContainedWord(lower, sizeWords) != "" ||
		firstContainedWord(lower, materialWords) != "" ||
		firstContainedWord(lower, attributeWords) != ""
}

// buildContextQuery synthesizes the full phrase the customer elided:
// the remembered service plus the attribute tokens of the current message.
func buildContextQuery(cctx *entity.CustomerContext, msg string) string {
	parts := []string{cctx.LastService}
	if pair := ParseMeasurement(msg); pair != nil {
		parts = append(parts, pair.CanonicalForm())
	}
	if cctx.Slots.Size != "" {
		parts = append(parts, cctx.Slots.Size)
	}
	if cctx.Slots.Material != "" {
		parts = append(parts, cctx.Slots.Material)
	}
	if cctx.Slots.Attribute != "" {
		parts = append(parts, cctx.Slots.Attribute)
	}
	return strings.Join(parts, " ")
}

func detectService(msg string) string {
	lower := strings.ToLower(msg)
	for _, kw := range serviceKeywords {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}

func updateSlots(cctx *entity.CustomerContext, msg string) {
	lower := strings.ToLower(msg)
	if w := firstContainedWord(lower, sizeWords); w != "" {
		cctx.Slots.Size = w
	}
	if w := firstContainedWord(lower, materialWords); w != "" {
		cctx.Slots.Material = w
	}
	if w := firstContainedWord(lower, attributeWords); w != "" {
		cctx.Slots.Attribute = w
	}
}

// rememberQuestionService keeps the category a clarifying question referred
// to, so the elliptical answer can be merged against it.
func rememberQuestionService(cctx *entity.CustomerContext, candidates []entity.CatalogItem) {
	if cctx.LastService != "" || len(candidates) == 0 {
		return
	}
	if cat := candidates[0].Category; cat != "" {
		cctx.LastService = strings.ToLower(cat)
	}
}

func containsAttributeQuestion(reply string) bool {
	lower := strings.ToLower(reply)
	for _, marker := range attributeQuestionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
