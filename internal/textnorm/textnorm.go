// Package textnorm holds the small string normalizers used when building
// contract numbers and placeholder replacements.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// quoteGlyphs are removed from company names before initials are taken.
var quoteGlyphs = strings.NewReplacer("«", "", "»", "", `"`, "", "'", "")

// Initials returns the upper-cased first letter of every whitespace-separated
// word in name, after quote glyphs are stripped. An empty name yields "".
func Initials(name string) string {
	cleaned := strings.TrimSpace(quoteGlyphs.Replace(norm.NFC.String(name)))
	upper := cases.Upper(language.Und)
	var b strings.Builder
	for _, word := range strings.Fields(cleaned) {
		for _, r := range word {
			b.WriteString(upper.String(string(r)))
			break
		}
	}
	return b.String()
}

// phonePrefix is the country code that NormalizePhone prefixes with "+".
const phonePrefix = "998"

// NormalizePhone rewrites a leading "998" to "+998". Any other value,
// including one that already starts with "+998", is returned unchanged.
func NormalizePhone(raw string) string {
	if strings.HasPrefix(raw, phonePrefix) {
		return "+" + raw
	}
	return raw
}
