package usecase

import (
	"strings"

	"github.com/cataloglens/backend/internal/domain"
)

// Platform variants are pure template substitution over fields already
// resolved on the row; nothing new is extracted here.

// baseTitle is the title the platform templates rearrange.
func baseTitle(row domain.Row) string {
	if v := row.Get("product_title"); v != "" {
		return v
	}
	return row.Get("title")
}

// platformTitle rearranges brand/title/color/size into the platform's
// fixed phrasing. Unknown platforms get the base title unchanged.
func platformTitle(p domain.Platform, row domain.Row) string {
	title := baseTitle(row)
	brand := row.Get("brand")
	color := row.Get("color")
	size := row.Get("size")

	var s string
	switch p {
	case domain.PlatformAmazon:
		s = brand + " " + title + " " + color + " " + size
	case domain.PlatformFlipkart:
		s = title + " (" + brand + ") - " + color
	case domain.PlatformMeesho:
		s = title + " " + color + " " + size
	case domain.PlatformMyntra:
		s = brand + " " + color + " " + title
	default:
		return title
	}
	return collapseSpaces(s)
}

// platformDescription appends the platform's fixed feature block to the
// base description. Unknown platforms get the base description unchanged.
func platformDescription(p domain.Platform, row domain.Row) string {
	base := row.Get("description")
	brand := row.Get("brand")
	material := row.Get("material")

	switch p {
	case domain.PlatformAmazon:
		return base + "\n\nKey Features:\n" +
			"• Premium " + brand + " quality\n" +
			"• Material: " + material + "\n" +
			"• Comfortable and durable\n" +
			"• Easy to care for"
	case domain.PlatformFlipkart:
		return base + "\n\nSpecifications:\n" +
			"- Brand: " + brand + "\n" +
			"- Material: " + material + "\n" +
			"- Genuine product\n" +
			"- Fast delivery"
	case domain.PlatformMeesho:
		return base + "\n\n" +
			"✓ Quality " + material + " product\n" +
			"✓ Trusted " + brand + " seller\n" +
			"✓ Easy returns"
	case domain.PlatformMyntra:
		return base + "\n\nProduct Details:\n" +
			"- Brand: " + brand + "\n" +
			"- Material: " + material + "\n" +
			"- Trendy design\n" +
			"- Regular fit"
	default:
		return base
	}
}

// platformKeywords joins the row's resolved attributes with a constant
// marketing tail; empty entries are dropped, order preserved. The list
// is the same for every platform.
func platformKeywords(row domain.Row) string {
	candidates := []string{
		row.Get("brand"),
		row.Get("category"),
		row.Get("color"),
		row.Get("material"),
		"quality",
		"premium",
		"best",
		"latest",
		"trending",
	}

	keywords := make([]string, 0, len(candidates))
	for _, kw := range candidates {
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return strings.Join(keywords, ", ")
}

// collapseSpaces squeezes whitespace runs to one space and trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(multiSpaceRegex.ReplaceAllString(s, " "))
}
