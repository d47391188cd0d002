package services

import (
	"fmt"
	"strings"

	"tourgether/internal/models/db_models"
	"tourgether/pkg/utils"
)

// Per-item truncation caps. These are hard caps, not guidelines: they bound
// the assembled context so the full prompt stays inside the generator's
// budget regardless of how verbose catalog descriptions are.
const (
	AttractionDescLimit = 300
	RestaurantDescLimit = 200
	WebExcerptLimit     = 250
)

// BuildContext assembles the single text block that becomes the generator's
// only source of facts. Deterministic, no model calls; a section is omitted
// entirely when its input list is empty.
func BuildContext(attractions []db_models.Attraction, restaurants []db_models.Restaurant, snippets []utils.WebSnippet) string {
	var b strings.Builder

	if len(attractions) > 0 {
		b.WriteString("## Retrieved Attractions from Database:\n")
		for i, a := range attractions {
			fmt.Fprintf(&b, "%d. **%s**", i+1, a.Name)
			if a.Rating != nil {
				fmt.Fprintf(&b, " (Rating: %.1f/5)", *a.Rating)
			}
			b.WriteString("\n")
			if a.Description != "" {
				fmt.Fprintf(&b, "   %s...\n", Truncate(a.Description, AttractionDescLimit))
			}
			if len(a.Categories) > 0 {
				fmt.Fprintf(&b, "   Categories: %s\n", strings.Join(a.Categories, ", "))
			}
			if a.GeneralLocation != "" {
				fmt.Fprintf(&b, "   Location: %s\n", a.GeneralLocation)
			}
			b.WriteString("\n")
		}
	}

	if len(restaurants) > 0 {
		b.WriteString("\n## Retrieved Restaurants from Database:\n")
		for i, r := range restaurants {
			fmt.Fprintf(&b, "%d. **%s**", i+1, r.Name)
			if r.Rating != nil {
				fmt.Fprintf(&b, " (Rating: %.1f/5)", *r.Rating)
			}
			b.WriteString("\n")
			if r.Description != "" {
				fmt.Fprintf(&b, "   %s...\n", Truncate(r.Description, RestaurantDescLimit))
			}
			if len(r.Cuisines) > 0 {
				fmt.Fprintf(&b, "   Cuisines: %s\n", strings.Join(r.Cuisines, ", "))
			}
			if r.GeneralLocation != "" {
				fmt.Fprintf(&b, "   Location: %s\n", r.GeneralLocation)
			}
			b.WriteString("\n")
		}
	}

	if len(snippets) > 0 {
		b.WriteString("\n## Additional Web Search Results:\n")
		for i, t := range snippets {
			fmt.Fprintf(&b, "%d. **%s**\n", i+1, t.Title)
			fmt.Fprintf(&b, "   %s...\n", Truncate(t.Content, WebExcerptLimit))
			fmt.Fprintf(&b, "   Source: %s\n\n", t.URL)
		}
	}

	return b.String()
}

// Truncate cuts s to at most limit runes.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
