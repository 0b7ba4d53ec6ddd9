// Package numbering derives contract numbers from format templates such as
// "RC-{Year}-{Month}-{Day}".
package numbering

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jorge-barreto/contractgen/internal/config"
	"github.com/jorge-barreto/contractgen/internal/textnorm"
)

const (
	DefaultPrefix = "RC"
	DefaultFormat = "RC-{Year}-{Month}-{Day}"

	// DefaultPartyMarker in MyName marks the issuing party as a company.
	DefaultPartyMarker = "SMART TEAMS"
)

// Party type labels used in output file names.
const (
	PartyLLC    = "LLC"
	PartyPerson = "Person"
)

// tokenRe matches only the closed token set. Any other brace group is left
// in the output as literal text.
var tokenRe = regexp.MustCompile(`\{(ContractPrefix|Prefix|ComName|CName|Day|Month|Year)\}`)

// Fallbacks are used when the contract document does not set ContractPrefix
// or ContractFormat. Empty fields fall through to the package defaults.
type Fallbacks struct {
	Prefix string
	Format string
}

// Format synthesizes a contract number from data. Missing Day, Month and
// Year render as "00", "00" and "" respectively so that date-less numbering
// schemes keep working.
func Format(data config.Data, fallbackPrefix, fallbackFormat string) string {
	prefix := firstNonEmpty(data.Trimmed(config.KeyContractPrefix), fallbackPrefix, DefaultPrefix)
	format := firstNonEmpty(data.Trimmed(config.KeyContractFormat), fallbackFormat, DefaultFormat)

	initials := textnorm.Initials(data.String(config.KeyComName))
	values := map[string]string{
		"ContractPrefix": prefix,
		"Prefix":         prefix,
		"ComName":        initials,
		"CName":          initials,
		"Day":            padLeft(truthyString(data, config.KeyDay), 2),
		"Month":          padLeft(truthyString(data, config.KeyMonth), 2),
		"Year":           truthyString(data, config.KeyYear),
	}

	return tokenRe.ReplaceAllStringFunc(format, func(tok string) string {
		return values[tok[1:len(tok)-1]]
	})
}

// Number returns the contract number for one run: ContractNumber from the
// document when it is set, otherwise a number synthesized by Format.
func Number(data config.Data, fb Fallbacks) string {
	if n := data.Trimmed(config.KeyContractNumber); n != "" {
		return n
	}
	return Format(data, fb.Prefix, fb.Format)
}

// FolderName strips every whitespace rune from number so it can be used as
// a directory or file name.
func FolderName(number string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, number)
}

// Preview is the number printed by the preview command. A ContractNumber
// from the document is shown without whitespace; a synthesized number is
// shown as formatted.
func Preview(data config.Data, fb Fallbacks) string {
	if n := data.Trimmed(config.KeyContractNumber); n != "" {
		return FolderName(n)
	}
	return Format(data, fb.Prefix, fb.Format)
}

// PartyType labels the issuing party: PartyLLC when MyName contains marker,
// PartyPerson otherwise. An empty marker falls back to DefaultPartyMarker.
func PartyType(data config.Data, marker string) string {
	if marker == "" {
		marker = DefaultPartyMarker
	}
	if strings.Contains(data.String(config.KeyMyName), marker) {
		return PartyLLC
	}
	return PartyPerson
}

// truthyString renders the field only when it is set; empty strings and a
// numeric zero both count as unset.
func truthyString(data config.Data, key string) string {
	v, ok := data.Lookup(key)
	if !ok || !v.Truthy() {
		return ""
	}
	return v.String()
}

// padLeft pads s with zeros to width runes. Longer values are kept whole.
func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat("0", width-n) + s
	}
	return s
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
