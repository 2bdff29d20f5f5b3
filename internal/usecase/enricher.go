package usecase

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cataloglens/backend/internal/domain"
)

const (
	// maxTitleTokens caps how much of a raw line is promoted to a title
	maxTitleTokens = 10

	// maxDescriptionRawChars caps the raw-text tail appended to a synthesized description
	maxDescriptionRawChars = 200

	// mrpMarkup is the fixed markup applied to a resolved price
	mrpMarkup = 1.25
)

// EnricherConfig holds configuration for the enrichment engine
type EnricherConfig struct {
	EnableDebugLogging bool
}

// Enricher fills missing fields on catalog rows from raw product text,
// fixed vocabularies, and templates. It holds no state across calls:
// the same (catalog, rawText) pair always yields the same output.
type Enricher struct {
	enableDebugLogging bool
}

// NewEnricher creates a new enrichment engine with the given configuration
func NewEnricher(config EnricherConfig) *Enricher {
	return &Enricher{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Enrich derives every missing field on every row of the catalog.
// The returned catalog has the same length and order as the input;
// rows are copies, the input is never mutated. Fields already carrying
// a non-empty value are never overwritten.
func (e *Enricher) Enrich(catalog []domain.Row, rawText string) ([]domain.Row, error) {
	if len(catalog) == 0 {
		return nil, domain.ErrInvalidCatalog
	}
	if strings.TrimSpace(rawText) == "" {
		return nil, domain.ErrRawDataRequired
	}

	rawLines := splitRawLines(rawText)

	enriched := make([]domain.Row, 0, len(catalog))
	for i, row := range catalog {
		rawInfo := rawLineFor(rawLines, i)
		if e.enableDebugLogging {
			log.Printf("[ENRICH] row %d: %d existing fields, raw: %q", i, row.Len(), rawInfo)
		}
		enriched = append(enriched, e.enrichRow(row, rawInfo))
	}

	return enriched, nil
}

// splitRawLines splits raw text on newlines and drops lines that are
// empty after trimming.
func splitRawLines(rawText string) []string {
	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// rawLineFor pairs row i with its raw line. Rows beyond the number of
// lines reuse the first line; an empty line list yields "".
func rawLineFor(rawLines []string, i int) string {
	if i < len(rawLines) {
		return rawLines[i]
	}
	if len(rawLines) > 0 {
		return rawLines[0]
	}
	return ""
}

// enrichRow derives the missing fields of one row, in a fixed order.
// The ordering is part of the engine's contract: the description is
// synthesized before brand/category extraction runs, so it sees the
// row's original brand/category (or the "Quality"/"product" defaults),
// and the platform variants are derived before brand/color/size/material
// extraction, so on a sparse row they see only title and description.
func (e *Enricher) enrichRow(row domain.Row, rawInfo string) domain.Row {
	enriched := row.Clone()

	if !enriched.Has("product_title") {
		enriched.Set("product_title", deriveTitle(enriched, rawInfo))
	}
	if !enriched.Has("description") {
		enriched.Set("description", deriveDescription(enriched, rawInfo))
	}
	if !enriched.Has("price") {
		price := extractPrice(rawInfo)
		if price == "" {
			price = enriched.Get("price")
		}
		enriched.Set("price", price)
	}
	if !enriched.Has("mrp") {
		enriched.Set("mrp", deriveMRP(enriched.Get("price")))
	}

	for _, p := range domain.Platforms {
		if !enriched.Has(p.TitleField()) {
			enriched.Set(p.TitleField(), platformTitle(p, enriched))
		}
		if !enriched.Has(p.DescriptionField()) {
			enriched.Set(p.DescriptionField(), platformDescription(p, enriched))
		}
		if !enriched.Has(p.KeywordsField()) {
			enriched.Set(p.KeywordsField(), platformKeywords(enriched))
		}
	}

	if !enriched.Has("brand") {
		enriched.Set("brand", extractBrand(rawInfo))
	}
	if !enriched.Has("category") {
		enriched.Set("category", extractCategory(rawInfo))
	}
	if !enriched.Has("color") {
		enriched.Set("color", extractColor(rawInfo))
	}
	if !enriched.Has("size") {
		enriched.Set("size", extractSize(rawInfo))
	}
	if !enriched.Has("material") {
		enriched.Set("material", extractMaterial(rawInfo))
	}
	if !enriched.Has("stock_status") {
		enriched.Set("stock_status", stockStatusValue)
	}

	return enriched
}

// deriveTitle prefers an existing title-like field, then the first ten
// tokens of the raw line, then the literal fallback.
func deriveTitle(row domain.Row, rawInfo string) string {
	for _, key := range []string{"title", "name", "product_name"} {
		if v := row.Get(key); v != "" {
			return v
		}
	}
	if tokens := strings.Fields(rawInfo); len(tokens) > 0 {
		if len(tokens) > maxTitleTokens {
			tokens = tokens[:maxTitleTokens]
		}
		return strings.Join(tokens, " ")
	}
	return fallbackTitle
}

// deriveDescription prefers an existing desc field, then synthesizes a
// description from the row's current brand/category/color/material and
// the head of the raw line.
func deriveDescription(row domain.Row, rawInfo string) string {
	if v := row.Get("desc"); v != "" {
		return v
	}

	brand := row.Get("brand")
	if brand == "" {
		brand = "Quality"
	}
	category := row.Get("category")
	if category == "" {
		category = "product"
	}

	desc := fmt.Sprintf("Premium %s %s", brand, category)
	if color := row.Get("color"); color != "" {
		desc += fmt.Sprintf(" in %s color", color)
	}
	if material := row.Get("material"); material != "" {
		desc += fmt.Sprintf(" made with %s", material)
	}
	desc += ". " + truncateRunes(rawInfo, maxDescriptionRawChars)
	return desc
}

// deriveMRP marks the price up by 25% when it parses as a positive
// number; anything else yields an empty MRP.
func deriveMRP(price string) string {
	f, err := strconv.ParseFloat(price, 64)
	if err != nil || f <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", f*mrpMarkup)
}

// truncateRunes returns at most n runes of s.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
