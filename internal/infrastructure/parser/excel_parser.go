package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/storefront-assistant-bot/internal/domain/entity"
)

// ParseCatalogFile reads a price-list workbook into catalog items. Expected
// columns on the first sheet: ID (optional), NAME, PRICE, CATEGORY
// (optional). The first row is treated as a header when its price cell is
// not numeric.
func ParseCatalogFile(path string) ([]entity.CatalogItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open price list: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("price list has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read price list: %w", err)
	}

	now := time.Now()
	var items []entity.CatalogItem
	for _, row := range rows {
		// Header rows and blanks fail the price parse and are skipped.
		if item, ok := parseRow(row, now); ok {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("price list has no usable rows")
	}
	return items, nil
}

func parseRow(row []string, now time.Time) (entity.CatalogItem, bool) {
	cells := make([]string, 4)
	for i := 0; i < len(cells) && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}

	id, name, priceRaw, category := cells[0], cells[1], cells[2], cells[3]
	// Two-column sheets carry NAME, PRICE only.
	if name == "" || priceRaw == "" {
		id, name, priceRaw, category = "", cells[0], cells[1], ""
	}
	if name == "" {
		return entity.CatalogItem{}, false
	}
	price, err := parsePrice(priceRaw)
	if err != nil {
		return entity.CatalogItem{}, false
	}
	if id == "" {
		id = uuid.New().String()
	}
	return entity.CatalogItem{
		ID:          id,
		Name:        strings.ToUpper(name),
		Price:       price,
		Category:    strings.ToUpper(category),
		Active:      true,
		LastUpdated: now,
	}, true
}

// parsePrice accepts "38500", "38.500" and "$38.500".
func parsePrice(raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ".", "", " ", "").Replace(raw)
	cleaned = strings.Replace(cleaned, ",", ".", 1)
	return strconv.ParseFloat(cleaned, 64)
}
