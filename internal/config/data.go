package config

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind tags the dynamic type held by a Value.
type Kind int

const (
	Absent Kind = iota
	String
	Number
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return "absent"
	}
}

// Value is a single field of a contract document: a string, a number, or
// nothing at all.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// NumberValue wraps f.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// Kind reports what the value holds.
func (v Value) Kind() Kind { return v.kind }

// String renders the value as text. Numbers use the shortest decimal form
// ("5", "2.5"); an absent value renders as "".
func (v Value) String() string {
	switch v.kind {
	case String:
		return v.str
	case Number:
		return formatNumber(v.num)
	default:
		return ""
	}
}

// Truthy reports whether the value counts as set: absent values, empty
// strings, zero and NaN do not.
func (v Value) Truthy() bool {
	switch v.kind {
	case String:
		return v.str != ""
	case Number:
		return v.num != 0 && !math.IsNaN(v.num)
	default:
		return false
	}
}

// Float coerces the value to a number. Strings are trimmed and an empty
// string coerces to 0. ok is false for absent values and for strings that
// are not numeric.
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case Number:
		return v.num, true
	case String:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	if math.Abs(f) >= 1e21 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Data is one parsed contract document: field name to value. Keys are free
// form; see the Key* constants for the ones with structural meaning.
type Data map[string]Value

// Reserved field names.
const (
	KeyContractNumber = "ContractNumber"
	KeyContractPrefix = "ContractPrefix"
	KeyContractFormat = "ContractFormat"
	KeyComName        = "ComName"
	KeyDay            = "Day"
	KeyMonth          = "Month"
	KeyYear           = "Year"
	KeyArea           = "Area"
	KeyMyName         = "MyName"
)

// Lookup returns the value stored under key. ok is false when the key is
// missing or was null in the source document.
func (d Data) Lookup(key string) (Value, bool) {
	v, ok := d[key]
	if !ok || v.kind == Absent {
		return Value{}, false
	}
	return v, true
}

// String returns the value under key rendered as text, or "" if absent.
func (d Data) String(key string) string {
	v, _ := d.Lookup(key)
	return v.String()
}

// Trimmed is String with surrounding whitespace removed.
func (d Data) Trimmed(key string) string {
	return strings.TrimSpace(d.String(key))
}

// Keys returns the field names that hold a value, sorted.
func (d Data) Keys() []string {
	keys := make([]string, 0, len(d))
	for k, v := range d {
		if v.kind != Absent {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
