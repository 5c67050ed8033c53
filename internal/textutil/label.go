package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryLabel title-cases a category name for display ("rice" becomes
// "Rice"). Scripts without case, such as Hangul, pass through unchanged.
// Blank names render as "(none)".
func CategoryLabel(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return "(none)"
	}
	return cases.Title(language.Und).String(category)
}
