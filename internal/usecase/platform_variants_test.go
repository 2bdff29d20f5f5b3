package usecase

import (
	"strings"
	"testing"

	"github.com/cataloglens/backend/internal/domain"
)

func TestPlatformTitle(t *testing.T) {
	row := rowFrom(
		"product_title", "Air Max",
		"brand", "Nike",
		"color", "Blue",
		"size", "M",
	)

	tests := []struct {
		platform domain.Platform
		want     string
	}{
		{domain.PlatformAmazon, "Nike Air Max Blue M"},
		{domain.PlatformFlipkart, "Air Max (Nike) - Blue"},
		{domain.PlatformMeesho, "Air Max Blue M"},
		{domain.PlatformMyntra, "Nike Blue Air Max"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			if got := platformTitle(tt.platform, row); got != tt.want {
				t.Errorf("platformTitle(%s) = %q, want %q", tt.platform, got, tt.want)
			}
		})
	}
}

func TestPlatformTitleCollapsesMissingFields(t *testing.T) {
	// Only a title is resolved: the filler spaces from the empty brand,
	// color, and size slots collapse away.
	row := rowFrom("product_title", "Air Max")

	if got := platformTitle(domain.PlatformAmazon, row); got != "Air Max" {
		t.Errorf("amazon title = %q, want %q", got, "Air Max")
	}
	if got := platformTitle(domain.PlatformMeesho, row); got != "Air Max" {
		t.Errorf("meesho title = %q, want %q", got, "Air Max")
	}
}

func TestPlatformTitleUnknownPlatformFallsBack(t *testing.T) {
	row := rowFrom("product_title", "Air Max", "brand", "Nike")

	if got := platformTitle(domain.Platform("ebay"), row); got != "Air Max" {
		t.Errorf("unknown platform title = %q, want base title", got)
	}
}

func TestPlatformTitleUsesTitleFieldBeforeEnrichment(t *testing.T) {
	row := rowFrom("title", "Red Dress")

	if got := platformTitle(domain.PlatformMeesho, row); got != "Red Dress" {
		t.Errorf("title = %q, want %q", got, "Red Dress")
	}
}

func TestPlatformDescription(t *testing.T) {
	row := rowFrom(
		"description", "A solid everyday pick.",
		"brand", "Nike",
		"material", "Cotton",
	)

	tests := []struct {
		platform domain.Platform
		header   string
	}{
		{domain.PlatformAmazon, "Key Features:"},
		{domain.PlatformFlipkart, "Specifications:"},
		{domain.PlatformMyntra, "Product Details:"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			got := platformDescription(tt.platform, row)
			if !strings.HasPrefix(got, "A solid everyday pick.") {
				t.Errorf("description does not start with base: %q", got)
			}
			if !strings.Contains(got, tt.header) {
				t.Errorf("description missing %q block: %q", tt.header, got)
			}
			if !strings.Contains(got, "Nike") || !strings.Contains(got, "Cotton") {
				t.Errorf("description does not reference brand/material: %q", got)
			}
		})
	}

	t.Run("meesho", func(t *testing.T) {
		got := platformDescription(domain.PlatformMeesho, row)
		if n := strings.Count(got, "✓"); n != 3 {
			t.Errorf("meesho description has %d checkmark lines, want 3", n)
		}
	})

	t.Run("unknown platform falls back", func(t *testing.T) {
		got := platformDescription(domain.Platform("ebay"), row)
		if got != "A solid everyday pick." {
			t.Errorf("unknown platform description = %q, want base", got)
		}
	})
}

func TestPlatformKeywords(t *testing.T) {
	t.Run("full row", func(t *testing.T) {
		row := rowFrom(
			"brand", "Nike",
			"category", "Shoes",
			"color", "Blue",
			"material", "Leather",
		)
		want := "Nike, Shoes, Blue, Leather, quality, premium, best, latest, trending"
		if got := platformKeywords(row); got != want {
			t.Errorf("platformKeywords() = %q, want %q", got, want)
		}
	})

	t.Run("empty attributes dropped", func(t *testing.T) {
		row := rowFrom("brand", "Nike")
		want := "Nike, quality, premium, best, latest, trending"
		if got := platformKeywords(row); got != want {
			t.Errorf("platformKeywords() = %q, want %q", got, want)
		}
	})

	t.Run("bare row keeps constant tail", func(t *testing.T) {
		want := "quality, premium, best, latest, trending"
		if got := platformKeywords(domain.NewRow()); got != want {
			t.Errorf("platformKeywords() = %q, want %q", got, want)
		}
	})
}

func TestCollapseSpaces(t *testing.T) {
	if got := collapseSpaces("  a   b \t c  "); got != "a b c" {
		t.Errorf("collapseSpaces() = %q, want %q", got, "a b c")
	}
}
