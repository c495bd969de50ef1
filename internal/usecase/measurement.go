package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/constants"
	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// Measurement extraction patterns, tried in fixed precedence order. The
// first pattern carries an explicit unit marker ("1,6 M. X 2,3 M."), so its
// numbers are always meters; the centimeter heuristic applies only to the
// bare forms.
var (
	reMeasureCanonical  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*M\.?\s*X\s*(\d+(?:[.,]\d+)?)\s*M\.?`)
	reMeasureBare       = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*[xX×]\s*(\d+(?:[.,]\d+)?)`)
	reMeasureWorded     = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*por\s*(\d+(?:[.,]\d+)?)`)
	reMeasureContextual = regexp.MustCompile(`(?i)(?:la|el|de|una|un)\s+.*?(\d+(?:[.,]\d+)?)\s*[xX×]\s*(\d+(?:[.,]\d+)?)`)

	// reItemMeasure matches measurements inside catalog item names, where
	// the unit marker may be partial or missing ("ALFOMBRA 2 M. X 3 M.").
	reItemMeasure = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:M\.?)?\s*[xX×]\s*(\d+(?:[.,]\d+)?)\s*(?:M\.?)?`)
)

type measurePattern struct {
	re *regexp.Regexp
	// unitExplicit marks patterns whose numbers are known to be meters.
	unitExplicit bool
}

var measurePatterns = []measurePattern{
	{re: reMeasureCanonical, unitExplicit: true},
	{re: reMeasureBare},
	{re: reMeasureWorded},
	{re: reMeasureContextual},
}

// centimeterHeuristic controls whether bare measurement values above the
// threshold are read as centimeters. Set once at startup.
var centimeterHeuristic = true

// SetCentimeterHeuristic toggles centimeter inference for bare measurement
// forms. Not safe to call concurrently with parsing.
func SetCentimeterHeuristic(enabled bool) {
	centimeterHeuristic = enabled
}

// ParseMeasurement extracts a width x length pair from free text. It returns
// nil when the text contains no measurement, or when one looked present but
// did not yield two positive numbers (the caller then falls back to plain
// term search). The function is pure.
func ParseMeasurement(text string) *entity.MeasurementPair {
	for _, p := range measurePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		width, okW := parseDecimal(m[1])
		length, okL := parseDecimal(m[2])
		if !okW || !okL || width <= 0 || length <= 0 {
			return nil
		}
		if centimeterHeuristic && !p.unitExplicit && width > constants.CentimeterThreshold && length > constants.CentimeterThreshold {
			// Both values over the threshold read as centimeters.
			width /= 100
			length /= 100
		}
		return &entity.MeasurementPair{Width: width, Length: length}
	}
	return nil
}

// ParseItemMeasurement extracts the measurement embedded in a catalog item
// name. Item names already follow the catalog convention, so no unit
// inference is applied.
func ParseItemMeasurement(name string) *entity.MeasurementPair {
	m := reItemMeasure.FindStringSubmatch(name)
	if m == nil {
		return nil
	}
	width, okW := parseDecimal(m[1])
	length, okL := parseDecimal(m[2])
	if !okW || !okL || width <= 0 || length <= 0 {
		return nil
	}
	return &entity.MeasurementPair{Width: width, Length: length}
}

// HasItemMeasurement reports whether a catalog item name embeds a
// measurement.
func HasItemMeasurement(name string) bool {
	return ParseItemMeasurement(name) != nil
}

func parseDecimal(raw string) (float64, bool) {
	raw = strings.Replace(raw, ",", ".", 1)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
