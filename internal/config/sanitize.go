package config

import (
	"regexp"
	"strings"
	"unicode"
)

// Each pattern matches one top-level key line and captures the key with its
// separator, then the value without trailing blanks.
var (
	formatLineRe = regexp.MustCompile(`^(ContractFormat[ \t]*:[ \t]*)(.*?)[ \t]*$`)
	numberLineRe = regexp.MustCompile(`^(ContractNumber[ \t]*:[ \t]*)(.*?)[ \t]*$`)
)

// Sanitize quotes the two values that a YAML parser would otherwise
// misread: a ContractFormat containing braces (parsed as a flow mapping)
// and a ContractNumber containing whitespace. Already-quoted values and all
// other lines are left byte-for-byte intact.
func Sanitize(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		body, cr := strings.CutSuffix(line, "\r")
		if m := formatLineRe.FindStringSubmatch(body); m != nil {
			if v := m[2]; v != "" && !fullyQuoted(v) && strings.ContainsAny(v, "{}") {
				lines[i] = m[1] + `"` + v + `"` + crSuffix(cr)
			}
			continue
		}
		if m := numberLineRe.FindStringSubmatch(body); m != nil {
			if v := m[2]; !fullyQuoted(v) && strings.IndexFunc(v, unicode.IsSpace) >= 0 {
				lines[i] = m[1] + `"` + v + `"` + crSuffix(cr)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func fullyQuoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	first, last := v[0], v[len(v)-1]
	return first == last && (first == '"' || first == '\'')
}

func crSuffix(had bool) string {
	if had {
		return "\r"
	}
	return ""
}
