package constants

// Matching constants
const (
	// DefaultMatchEpsilon is the maximum aggregate width+length difference
	// (in meters) for accepting a nearest-numeric measurement match.
	// Empirically chosen; override with MATCH_EPSILON.
	DefaultMatchEpsilon = 0.1

	// DefaultQueryLimit caps rows fetched per catalog query.
	DefaultQueryLimit = 50

	// DefaultCategoryFetchLimit caps rows fetched for nearest-numeric
	// scans over one category.
	DefaultCategoryFetchLimit = 100

	// DefaultCategory is the category assumed for measurement queries when
	// the text names none. Rugs carry measurements in almost every name.
	DefaultCategory = "ALFOMBRA"

	// CentimeterThreshold drives the unit inference heuristic: when both
	// parsed numbers exceed it, they are read as centimeters and divided
	// by 100. Ambiguous for legitimate meter values above 10; the
	// canonical-unit pattern (explicit "M.") is exempt so canonical forms
	// always re-parse to the same pair.
	CentimeterThreshold = 10.0
)

// Context constants
const (
	// DefaultMaxTurns caps the per-customer ring buffer of recent turns.
	DefaultMaxTurns = 10

	// DefaultShortReplyMaxWords is the word-count ceiling under which a
	// customer message may be treated as an elliptical answer to a pending
	// attribute question. Empirically chosen; override with
	// SHORT_REPLY_MAX_WORDS.
	DefaultShortReplyMaxWords = 4

	// DefaultContextTTLHours evicts customer contexts after this many
	// hours of inactivity.
	DefaultContextTTLHours = 24

	// DefaultCleanupMinutes is the context janitor tick interval.
	DefaultCleanupMinutes = 15
)

// Store constants
const (
	// DefaultTenant scopes catalog queries to one storefront.
	DefaultTenant = "lavadisimo"

	// DefaultQueryTimeoutSeconds bounds a single catalog query.
	DefaultQueryTimeoutSeconds = 10
)

// AI model constants
const (
	// GeminiModelName Gemini AI model name
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature response determinism (0.0-1.0)
	AITemperature = 0.3

	// AITopK Top-K sampling parameter
	AITopK = 20

	// AITopP Top-P sampling parameter
	AITopP = 0.9

	// MaxRetries for AI requests
	MaxRetries = 3

	// RetryDelay seconds between AI request attempts
	RetryDelay = 10
)
