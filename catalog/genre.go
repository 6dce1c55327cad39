package catalog

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category is one of the palette genres used for coloring and trend stacking
type Category string

const (
	CategoryAction    Category = "Action"
	CategoryIndie     Category = "Indie"
	CategoryRPG       Category = "RPG"
	CategoryStrategy  Category = "Strategy"
	CategoryAdventure Category = "Adventure"
	CategoryOther     Category = "Other"
)

// Categories lists the stackable categories in declaration order. Other is the
// catch-all and never stacked. Order is the tie-break for equal totals
var Categories = []Category{
	CategoryAction,
	CategoryIndie,
	CategoryRPG,
	CategoryStrategy,
	CategoryAdventure,
}

// AllCategories is Categories plus the catch-all, used by palettes and legends
var AllCategories = append(append([]Category(nil), Categories...), CategoryOther)

// CategoryOf resolves a tag to a stackable category. Matching is exact, like
// the genre strings of the source data
func CategoryOf(tag string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == tag {
			return c, true
		}
	}
	return "", false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeTag canonicalizes a raw genre tag: NFKC unicode form, trimmed,
// inner whitespace collapsed. Case is preserved since categories match exactly
func NormalizeTag(s string) string {
	s = norm.NFKC.String(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// SplitGenres splits a ';' separated genre field, dropping empty entries
func SplitGenres(field string) []string {
	if strings.TrimSpace(field) == "" {
		return []string{}
	}
	parts := strings.Split(field, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := NormalizeTag(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
