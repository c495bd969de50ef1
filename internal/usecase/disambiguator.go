package usecase

import (
	"regexp"
	"strings"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// Disambiguation axes, in detection priority order.
const (
	AxisMeasurement = "medida"
	AxisSize        = "tamaño"
	AxisMaterial    = "material"
	AxisAttribute   = "atributo"
)

// Keyword families used both to detect an axis in candidate names and to
// recognize an answer inside the customer's own words. Longer phrases first
// so "extra grande" wins over "grande".
var (
	sizeWords      = []string{"extra grande", "chica", "pequeña", "mediana", "media", "grande", "xl"}
	materialWords  = []string{"sintético", "sintetico", "poliester", "pluma", "seda", "lana", "algodón", "algodon", "cuero", "cuerina", "gamuza"}
	attributeWords = []string{"premium", "básico", "basico", "simple", "doble", "extra"}
)

var reTrailingPrice = regexp.MustCompile(`\$\s*[0-9][0-9.,]*\s*$`)

// Disambiguation is the outcome of narrowing an ambiguous candidate set.
// Resolved is set when the customer's own words singled out one item;
// otherwise Axis names the attribute to ask about ("" when none could be
// detected) and Candidates is the list to present.
type Disambiguation struct {
	Resolved   *entity.CatalogItem
	Axis       string
	Candidates []entity.CatalogItem
}

// Disambiguate derives the distinguishing attribute of a multi-candidate
// result. When the query already answers for that attribute, it filters
// instead of asking again; it never silently picks a candidate.
func Disambiguate(query string, candidates []entity.CatalogItem) Disambiguation {
	axis := axisFromVariantTokens(candidates)
	if axis == "" {
		axis = axisFromNames(candidates)
	}
	if axis == "" {
		return Disambiguation{Candidates: candidates}
	}

	if token := axisTokenIn(query, axis); token != "" {
		filtered := filterByToken(candidates, token)
		if len(filtered) == 1 {
			item := filtered[0]
			return Disambiguation{Resolved: &item, Axis: axis}
		}
		if len(filtered) > 1 {
			return Disambiguation{Axis: axis, Candidates: filtered}
		}
	}
	return Disambiguation{Axis: axis, Candidates: candidates}
}

// axisFromVariantTokens strips the longest common prefix from candidate
// names and classifies the remainders. A degenerate token set (all equal or
// empty) yields no axis.
func axisFromVariantTokens(candidates []entity.CatalogItem) string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	prefix := longestCommonPrefix(names)

	tokens := make([]string, 0, len(names))
	degenerate := true
	first := ""
	for i, name := range names {
		token := cleanVariantToken(name[len(prefix):])
		tokens = append(tokens, token)
		if i == 0 {
			first = token
		} else if token != first {
			degenerate = false
		}
	}
	if degenerate || allEmpty(tokens) {
		return ""
	}
	return classifyTokens(tokens)
}

func classifyTokens(tokens []string) string {
	for _, t := range tokens {
		if t != "" && HasItemMeasurement(t) {
			return AxisMeasurement
		}
	}
	for _, t := range tokens {
		lower := strings.ToLower(t)
		if containsAnyWord(lower, sizeWords) || strings.Contains(lower, "talla") {
			return AxisSize
		}
	}
	for _, t := range tokens {
		if containsAnyWord(strings.ToLower(t), materialWords) {
			return AxisMaterial
		}
	}
	for _, t := range tokens {
		if containsAnyWord(strings.ToLower(t), attributeWords) {
			return AxisAttribute
		}
	}
	return ""
}

// axisFromNames scans whole candidate names against the keyword families,
// measurement first.
func axisFromNames(candidates []entity.CatalogItem) string {
	for _, c := range candidates {
		if HasItemMeasurement(c.Name) {
			return AxisMeasurement
		}
	}
	families := []struct {
		axis  string
		words []string
	}{
		{AxisSize, sizeWords},
		{AxisMaterial, materialWords},
		{AxisAttribute, attributeWords},
	}
	for _, fam := range families {
		for _, c := range candidates {
			lower := strings.ToLower(c.Name)
			if containsAnyWord(lower, fam.words) {
				return fam.axis
			}
			if fam.axis == AxisSize && strings.Contains(lower, "talla") {
				return fam.axis
			}
		}
	}
	return ""
}

// axisTokenIn finds a word of the detected axis inside the customer's query.
func axisTokenIn(query, axis string) string {
	lower := strings.ToLower(query)
	switch axis {
	case AxisMeasurement:
		if pair := ParseMeasurement(query); pair != nil {
			return pair.CanonicalForm()
		}
	case AxisSize:
		return firstContainedWord(lower, sizeWords)
	case AxisMaterial:
		return firstContainedWord(lower, materialWords)
	case AxisAttribute:
		return firstContainedWord(lower, attributeWords)
	}
	return ""
}

// filterByToken keeps candidates whose name contains the token or any of
// its catalog aliases.
func filterByToken(candidates []entity.CatalogItem, token string) []entity.CatalogItem {
	needles := []string{strings.ToUpper(token)}
	for _, alias := range aliasTable[strings.ToLower(token)] {
		needles = append(needles, strings.ToUpper(alias))
	}

	var out []entity.CatalogItem
	for _, c := range candidates {
		upper := strings.ToUpper(c.Name)
		for _, needle := range needles {
			if strings.Contains(upper, needle) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func longestCommonPrefix(names []string) string {
	if len(names) == 0 {
		return ""
	}
	prefix := names[0]
	for _, name := range names[1:] {
		for !strings.HasPrefix(name, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// cleanVariantToken trims punctuation and a trailing price from a name
// remainder.
func cleanVariantToken(s string) string {
	s = reTrailingPrice.ReplaceAllString(s, "")
	return strings.Trim(s, " .,:-")
}

func allEmpty(tokens []string) bool {
	for _, t := range tokens {
		if t != "" {
			return false
		}
	}
	return true
}

func containsAnyWord(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func firstContainedWord(s string, words []string) string {
	for _, w := range words {
		if strings.Contains(s, w) {
			return w
		}
	}
	return ""
}
