// Package placeholder finds [Token] placeholders in template text and
// computes the replacement text for each one.
package placeholder

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jorge-barreto/contractgen/internal/config"
	"github.com/jorge-barreto/contractgen/internal/numtext"
	"github.com/jorge-barreto/contractgen/internal/textnorm"
)

var tokenRe = regexp.MustCompile(`\[([A-Za-z0-9_]+)\]`)

// Result maps each scanned token to its replacement text. Every scanned
// token has an entry; missing data resolves to "".
type Result map[string]string

// Replacement is one literal find/replace pair for a document editor.
type Replacement struct {
	Token string
	Find  string
	With  string
}

// Scan returns the distinct tokens found in text, sorted.
func Scan(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, m := range tokenRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	sort.Strings(tokens)
	return tokens
}

// Literal returns the bracketed form of token as it appears in a template.
func Literal(token string) string {
	return "[" + token + "]"
}

// Resolver turns tokens into replacement text. Words and MonthName spell
// numbers and months; nil fields use the Russian speller from numtext.
type Resolver struct {
	Words     func(n float64) string
	MonthName func(n int) string
}

// NewResolver returns a Resolver wired to numtext.
func NewResolver() *Resolver {
	return &Resolver{Words: numtext.Words, MonthName: numtext.MonthName}
}

// Resolve scans text and resolves every distinct token once. It never
// fails: unresolvable tokens map to "".
func Resolve(text string, data config.Data, contractNumber string) Result {
	return NewResolver().Resolve(text, data, contractNumber)
}

// Resolve scans text and resolves every distinct token once.
func (r *Resolver) Resolve(text string, data config.Data, contractNumber string) Result {
	tokens := Scan(text)
	res := make(Result, len(tokens))
	for _, tok := range tokens {
		res[tok] = r.Token(tok, data, contractNumber)
	}
	return res
}

// Token resolves a single token with the first matching strategy.
func (r *Resolver) Token(token string, data config.Data, contractNumber string) string {
	s := classify(token)
	return s.resolve(r, token, data, contractNumber)
}

// Classify names the strategy that resolves token.
func Classify(token string) string {
	return classify(token).name
}

type strategy struct {
	name    string
	match   func(token string) bool
	resolve func(r *Resolver, token string, data config.Data, contractNumber string) string
}

// strategies is evaluated in order; the last entry matches everything.
var strategies = []strategy{
	{
		name:  "contract-number",
		match: func(tok string) bool { return tok == "ContractNum" },
		resolve: func(_ *Resolver, _ string, _ config.Data, number string) string {
			return number
		},
	},
	{
		name:    "month-name",
		match:   func(tok string) bool { return tok == "MonthText" },
		resolve: resolveMonth,
	},
	{
		name:    "number-words",
		match:   func(tok string) bool { return strings.HasSuffix(tok, "Text") },
		resolve: resolveWords,
	},
	{
		name:    "phone",
		match:   func(tok string) bool { return strings.HasSuffix(tok, "Phone") },
		resolve: resolvePhone,
	},
	{
		name:    "field",
		match:   func(string) bool { return true },
		resolve: resolveField,
	},
}

func classify(token string) strategy {
	for _, s := range strategies {
		if s.match(token) {
			return s
		}
	}
	return strategies[len(strategies)-1]
}

func resolveMonth(r *Resolver, _ string, data config.Data, _ string) string {
	v, ok := data.Lookup(config.KeyMonth)
	if !ok {
		return ""
	}
	f, ok := v.Float()
	if !ok || f != math.Trunc(f) {
		return ""
	}
	return r.monthName(int(f))
}

func resolveWords(r *Resolver, token string, data config.Data, _ string) string {
	v, ok := data.Lookup(strings.TrimSuffix(token, "Text"))
	if !ok {
		return ""
	}
	f, ok := v.Float()
	if !ok {
		return ""
	}
	return r.words(f)
}

// resolvePhone looks up base+"Phone", which is the token itself.
func resolvePhone(_ *Resolver, token string, data config.Data, _ string) string {
	key := strings.TrimSuffix(token, "Phone") + "Phone"
	v, ok := data.Lookup(key)
	if !ok || !v.Truthy() {
		return ""
	}
	return textnorm.NormalizePhone(v.String())
}

func resolveField(_ *Resolver, token string, data config.Data, _ string) string {
	return data.String(token)
}

func (r *Resolver) words(f float64) string {
	if r.Words == nil {
		return numtext.Words(f)
	}
	return r.Words(f)
}

func (r *Resolver) monthName(n int) string {
	if r.MonthName == nil {
		return numtext.MonthName(n)
	}
	return r.MonthName(n)
}

// Tokens returns the resolved tokens, sorted.
func (res Result) Tokens() []string {
	tokens := make([]string, 0, len(res))
	for tok := range res {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	return tokens
}

// Replacements lists one literal find/replace pair per token, in token
// order.
func (res Result) Replacements() []Replacement {
	tokens := res.Tokens()
	out := make([]Replacement, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, Replacement{Token: tok, Find: Literal(tok), With: res[tok]})
	}
	return out
}

// Substitute applies every replacement to text, each one across the whole
// text, the same way a document editor would.
func Substitute(text string, res Result) string {
	for _, rep := range res.Replacements() {
		text = strings.ReplaceAll(text, rep.Find, rep.With)
	}
	return text
}
