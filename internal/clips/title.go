package clips

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	titleMaxWords = 8
	titleEllipsis = "..."
)

var titleCaser = cases.Title(language.Und)

// Title derives a short display title from a highlight reason. The first
// few words are title-cased; longer reasons are truncated with an ellipsis.
func Title(reason string) string {
	words := strings.Fields(reason)
	if len(words) == 0 {
		return "Untitled Clip"
	}
	truncated := len(words) > titleMaxWords
	if truncated {
		words = words[:titleMaxWords]
	}
	title := titleCaser.String(strings.Join(words, " "))
	title = strings.TrimRight(title, ".,;:")
	if truncated {
		title += titleEllipsis
	}
	return title
}
