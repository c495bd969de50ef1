package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// User-facing fallback texts. The formatter never asserts a service, price
// or category that is not present in the match result it was given; these
// fixed sentences are the only exception.
const (
	msgNotFound = `No encontré servicios que coincidan con tu consulta. ¿Podrías ser más específico? Por ejemplo: "alfombra 2x3", "cortina mediana".`
	msgTransient = "Disculpa, tuve un problema al consultar los precios. ¿Podrías intentar nuevamente en unos minutos?"
)

// FormatPrice renders a price in the storefront's currency convention:
// dollar sign, dot as thousands separator, no decimals ("$38.500").
func FormatPrice(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))
	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ".")
	if neg && n != 0 {
		return "-" + out
	}
	return out
}

// FormatItem renders one resolved catalog item with its price.
func FormatItem(item entity.CatalogItem) string {
	return fmt.Sprintf("%s: %s", item.Name, FormatPrice(item.Price))
}

// FormatNotFound is the fixed zero-result reply.
func FormatNotFound() string {
	return msgNotFound
}

// FormatTransientError is the fixed reply for a store failure that survived
// the retry.
func FormatTransientError() string {
	return msgTransient
}

// QuestionForAxis is the clarifying question for a disambiguation axis. The
// empty axis yields the generic more-details request.
func QuestionForAxis(axis string) string {
	switch axis {
	case AxisMeasurement:
		return "¿Podrías especificar las medidas? Por ejemplo: 0,6 x 1,10"
	case AxisSize:
		return "¿Qué tamaño necesitas? (chica, mediana, grande)"
	case AxisMaterial:
		return "¿De qué material es? (cuero, sintético, lana)"
	case AxisAttribute:
		return "¿Qué tipo necesitas? (simple, doble, premium)"
	default:
		return "Tenemos varias opciones disponibles. ¿Podrías darme más detalles sobre lo que necesitas?"
	}
}

// FormatCandidates renders an unresolved candidate list followed by a
// clarifying question. Items are grouped by category when more than one is
// present; a group spanning several price points gets a min/max annotation.
func FormatCandidates(candidates []entity.CatalogItem, question string) string {
	var b strings.Builder

	categories := distinctCategories(candidates)
	if len(categories) > 1 {
		idx := 1
		for _, cat := range categories {
			group := itemsOfCategory(candidates, cat)
			label := cat
			if label == "" {
				label = "Otros servicios"
			}
			min, max := priceRange(group)
			if len(group) > 1 && min != max {
				fmt.Fprintf(&b, "%s (entre %s y %s):\n", label, FormatPrice(min), FormatPrice(max))
			} else {
				fmt.Fprintf(&b, "%s:\n", label)
			}
			for _, item := range group {
				fmt.Fprintf(&b, "%d. %s: %s\n", idx, item.Name, FormatPrice(item.Price))
				idx++
			}
		}
	} else {
		for i, item := range candidates {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, item.Name, FormatPrice(item.Price))
		}
	}

	if question != "" {
		b.WriteString("\n")
		b.WriteString(question)
	}
	return strings.TrimSpace(b.String())
}

// FormatResult renders a match result directly, without disambiguation.
func FormatResult(result entity.MatchResult) string {
	switch result.Kind {
	case entity.MatchSingle:
		return FormatItem(result.Item)
	case entity.MatchMultiple:
		return FormatCandidates(result.Candidates, QuestionForAxis(""))
	default:
		return FormatNotFound()
	}
}

func distinctCategories(items []entity.CatalogItem) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		out = append(out, item.Category)
	}
	return out
}

func itemsOfCategory(items []entity.CatalogItem, category string) []entity.CatalogItem {
	var out []entity.CatalogItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func priceRange(items []entity.CatalogItem) (float64, float64) {
	if len(items) == 0 {
		return 0, 0
	}
	min, max := items[0].Price, items[0].Price
	for _, item := range items[1:] {
		if item.Price < min {
			min = item.Price
		}
		if item.Price > max {
			max = item.Price
		}
	}
	return min, max
}
