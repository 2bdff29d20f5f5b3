package domain

// Platform identifies a marketplace target whose listing conventions drive
// the per-platform title/description/keyword variants.
type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformFlipkart Platform = "flipkart"
	PlatformMeesho   Platform = "meesho"
	PlatformMyntra   Platform = "myntra"
)

// Platforms is the closed set of supported marketplaces, in the fixed
// order variants are derived in.
var Platforms = []Platform{
	PlatformAmazon,
	PlatformFlipkart,
	PlatformMeesho,
	PlatformMyntra,
}

// TitleField returns the row key holding this platform's title variant.
func (p Platform) TitleField() string { return string(p) + "_title" }

// DescriptionField returns the row key holding this platform's description variant.
func (p Platform) DescriptionField() string { return string(p) + "_description" }

// KeywordsField returns the row key holding this platform's keyword list.
func (p Platform) KeywordsField() string { return string(p) + "_keywords" }

// RequiredFields lists every key an enriched row is guaranteed to carry,
// in derivation order. The key is always present after enrichment; the
// value may be empty (e.g. an unresolvable price).
func RequiredFields() []string {
	fields := []string{
		"product_title",
		"description",
		"price",
		"mrp",
	}
	for _, p := range Platforms {
		fields = append(fields, p.TitleField(), p.DescriptionField(), p.KeywordsField())
	}
	fields = append(fields,
		"brand",
		"category",
		"color",
		"size",
		"material",
		"stock_status",
	)
	return fields
}
