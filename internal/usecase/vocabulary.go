package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	// Matches a price like "₹1,200", "1200" or "999.50"; the rupee sign is optional
	priceRegex = regexp.MustCompile(`₹?\s*(\d+(?:,\d+)*(?:\.\d{2})?)`)

	// Matches an apparel size token on word boundaries, e.g. "M", "XL", "32"
	sizeRegex = regexp.MustCompile(`(?i)\b(XS|S|M|L|XL|XXL|XXXL|28|30|32|34|36|38|40|42)\b`)

	// Multiple spaces cleanup
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// Fixed vocabularies scanned in declared order; the first case-insensitive
// substring hit in the raw text wins. "T-Shirt" is listed before "Shirt"
// so the more specific category wins when both are present.
var (
	brandVocabulary    = []string{"Nike", "Adidas", "Puma", "Reebok", "Levi's", "Zara", "H&M"}
	categoryVocabulary = []string{"T-Shirt", "Shirt", "Jeans", "Shoes", "Dress", "Jacket", "Accessories"}
	colorVocabulary    = []string{"Black", "White", "Red", "Blue", "Green", "Yellow", "Pink", "Grey", "Brown", "Navy"}
	materialVocabulary = []string{"Cotton", "Polyester", "Silk", "Wool", "Denim", "Leather", "Synthetic"}
)

// Fallback values used when nothing in the raw text matches
const (
	fallbackBrand    = "Generic"
	fallbackCategory = "General"
	fallbackColor    = "Multi"
	fallbackSize     = "M"
	fallbackMaterial = "Cotton"
	fallbackTitle    = "Product"
	stockStatusValue = "In Stock"
)

// lookupVocabulary returns the first vocabulary entry found as a
// case-insensitive substring of raw, or fallback when none match.
func lookupVocabulary(raw string, vocabulary []string, fallback string) string {
	lower := strings.ToLower(raw)
	for _, entry := range vocabulary {
		if strings.Contains(lower, strings.ToLower(entry)) {
			return entry
		}
	}
	return fallback
}

func extractBrand(raw string) string {
	return lookupVocabulary(raw, brandVocabulary, fallbackBrand)
}

func extractCategory(raw string) string {
	return lookupVocabulary(raw, categoryVocabulary, fallbackCategory)
}

func extractColor(raw string) string {
	return lookupVocabulary(raw, colorVocabulary, fallbackColor)
}

func extractMaterial(raw string) string {
	return lookupVocabulary(raw, materialVocabulary, fallbackMaterial)
}

// extractSize returns the first size token found in raw, upper-cased,
// or "M" when none is present.
func extractSize(raw string) string {
	if m := sizeRegex.FindString(raw); m != "" {
		return strings.ToUpper(m)
	}
	return fallbackSize
}

// extractPrice returns the first price-like number in raw with grouping
// commas stripped, or "" when none is present.
func extractPrice(raw string) string {
	m := priceRegex.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], ",", "")
}
