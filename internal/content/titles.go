package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleFromKey derives a navigation label for topics whose manifest entry has no
// title, e.g. "pasarelas-de-pago" -> "Pasarelas De Pago".
func TitleFromKey(key string) string {
	words := strings.ReplaceAll(key, "-", " ")
	return cases.Title(language.Spanish).String(words)
}
