package usecase

import "strings"

// aliasTable maps colloquial, abbreviated and misspelled customer phrases to
// the substrings the catalog actually uses. Keys are lower-case; multi-word
// keys are matched against the whole phrase. The table is the only spelling
// correction the expander performs.
var aliasTable = map[string][]string{
	// Rugs
	"alfombra":  {"ALFOMBRA"},
	"alfombras": {"ALFOMBRA"},
	"tapete":    {"ALFOMBRA"},
	"tapices":   {"ALFOMBRA"},

	// Garments (catalog abbreviations)
	"chaqueta":   {"CHAQ"},
	"chaquetas":  {"CHAQ"},
	"casaca":     {"CHAQ"},
	"casacas":    {"CHAQ"},
	"pantalon":   {"PANT"},
	"pantalones": {"PANT"},
	"jeans":      {"PANT"},
	"blusa":      {"BLUS"},
	"blusas":     {"BLUS"},
	"camisa":     {"CAMI"},
	"camisas":    {"CAMI"},

	// Curtains and bedding
	"cortina":    {"CORTINA"},
	"cortinas":   {"CORTINA"},
	"cobertor":   {"COBERTOR"},
	"cobertores": {"COBERTOR"},
	"frazada":    {"COBERTOR", "FRAZADA"},
	"frazadas":   {"COBERTOR", "FRAZADA"},

	// Materials
	"cuero":   {"CUERO", "CUERINA"},
	"cuerina": {"CUERINA"},
	"gamuza":  {"GAMUZA"},

	// Bed sizes (catalog codes)
	"una plaza":      {"1 PL"},
	"1 plaza":        {"1 PL"},
	"plaza y media":  {"1 1/2 PL"},
	"plaza y medio":  {"1 1/2 PL"},
	"dos plazas":     {"2 PL"},
	"2 plazas":       {"2 PL"},
	"king":           {"KING"},
	"super king":     {"SUPER KING"},

	// Garment/curtain sizes
	"pequeña":      {"TALLA S"},
	"mediana":      {"TALLA M"},
	"grande":       {"TALLA L"},
	"extra grande": {"XL"},

	// Baby stroller, including the common misspelling
	"coche":           {"COCHE"},
	"choche":          {"COCHE"},
	"coche bebé":      {"COCHE"},
	"carrito":         {"COCHE"},
	"carrito de bebé": {"COCHE"},
	"cochecito":       {"COCHE"},
}

// stopWords are filler tokens that never help a catalog lookup.
var stopWords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {},
	"de": {}, "del": {}, "mi": {}, "mis": {}, "es": {}, "en": {},
	"y": {}, "o": {}, "al": {}, "me": {}, "se": {}, "que": {}, "qué": {},
	"por": {}, "para": {}, "con": {}, "sin": {},
	"cuanto": {}, "cuánto": {}, "cuesta": {}, "cuestan": {},
	"vale": {}, "valen": {}, "precio": {}, "precios": {},
	"lavar": {}, "lavado": {}, "limpieza": {}, "limpiar": {},
	"necesito": {}, "quiero": {}, "hola": {}, "tienes": {}, "tiene": {},
}

// ExpandTerms turns one raw customer phrase into the set of catalog search
// terms: the verbatim text, the canonical measurement string when the phrase
// contains one, its significant tokens, and every alias of those tokens and
// of the whole phrase. The result is deduplicated and never empty. The
// expander only substitutes known text; it never invents measurement values.
func ExpandTerms(raw string) []string {
	seen := make(map[string]struct{})
	var terms []string
	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}

	add(raw)
	if pair := ParseMeasurement(raw); pair != nil {
		add(pair.CanonicalForm())
	}

	lower := strings.ToLower(raw)
	for _, token := range strings.Fields(lower) {
		if _, skip := stopWords[token]; !skip && !strings.ContainsAny(token, "0123456789") {
			add(token)
		}
		for _, alias := range aliasTable[token] {
			add(alias)
		}
	}
	// Multi-word aliases match against the whole phrase.
	for _, alias := range aliasTable[strings.TrimSpace(lower)] {
		add(alias)
	}

	return terms
}
