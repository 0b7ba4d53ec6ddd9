// Package numtext spells numbers and months in Russian, the language the
// contract templates are written in.
package numtext

import (
	"math"
	"strings"
)

var (
	unitsMasc = [...]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitsFem  = [...]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens     = [...]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tens = [...]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = [...]string{"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

type scale struct {
	forms    [3]string // one, few, many
	feminine bool
}

// scales[i] names 1000^i; index 0 is the bare units group.
var scales = []scale{
	{},
	{forms: [3]string{"тысяча", "тысячи", "тысяч"}, feminine: true},
	{forms: [3]string{"миллион", "миллиона", "миллионов"}},
	{forms: [3]string{"миллиард", "миллиарда", "миллиардов"}},
	{forms: [3]string{"триллион", "триллиона", "триллионов"}},
	{forms: [3]string{"квадриллион", "квадриллиона", "квадриллионов"}},
	{forms: [3]string{"квинтиллион", "квинтиллиона", "квинтиллионов"}},
}

var months = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Words spells the integer part of n, truncated toward zero. NaN, infinities
// and magnitudes that do not fit in an int64 yield "".
func Words(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) || math.Abs(n) >= math.MaxInt64 {
		return ""
	}
	i := int64(math.Trunc(n))
	if i == 0 {
		return "ноль"
	}
	if i < 0 {
		return "минус " + spell(uint64(-i))
	}
	return spell(uint64(i))
}

func spell(n uint64) string {
	var groups []uint64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}
	var words []string
	for idx := len(groups) - 1; idx >= 0; idx-- {
		g := int(groups[idx])
		if g == 0 {
			continue
		}
		sc := scales[idx]
		words = append(words, triad(g, sc.feminine)...)
		if idx > 0 {
			words = append(words, plural(g, sc.forms))
		}
	}
	return strings.Join(words, " ")
}

func triad(n int, feminine bool) []string {
	var out []string
	if h := n / 100; h > 0 {
		out = append(out, hundreds[h])
	}
	rem := n % 100
	if rem >= 10 && rem <= 19 {
		return append(out, teens[rem-10])
	}
	if t := rem / 10; t > 0 {
		out = append(out, tens[t])
	}
	if u := rem % 10; u > 0 {
		if feminine {
			out = append(out, unitsFem[u])
		} else {
			out = append(out, unitsMasc[u])
		}
	}
	return out
}

func plural(n int, forms [3]string) string {
	n %= 100
	if n >= 11 && n <= 19 {
		return forms[2]
	}
	switch n % 10 {
	case 1:
		return forms[0]
	case 2, 3, 4:
		return forms[1]
	default:
		return forms[2]
	}
}

// MonthName returns the genitive Russian name of month n ("марта" for 3),
// as used in contract dates. Values outside 1..12 yield "".
func MonthName(n int) string {
	if n < 1 || n > len(months) {
		return ""
	}
	return months[n-1]
}
