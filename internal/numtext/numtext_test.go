package numtext

import (
	"math"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "ноль"},
		{5, "пять"},
		{11, "одиннадцать"},
		{21, "двадцать один"},
		{100, "сто"},
		{215, "двести пятнадцать"},
		{1000, "одна тысяча"},
		{2000, "две тысячи"},
		{5000, "пять тысяч"},
		{11000, "одиннадцать тысяч"},
		{21000, "двадцать одна тысяча"},
		{1001, "одна тысяча один"},
		{1500000, "один миллион пятьсот тысяч"},
		{2000000000, "два миллиарда"},
		{3000005, "три миллиона пять"},
		{-42, "минус сорок два"},
		{7.9, "семь"},
		{-0.5, "ноль"},
	}
	for _, tt := range tests {
		if got := Words(tt.in); got != tt.want {
			t.Errorf("Words(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWords_NonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e19} {
		if got := Words(in); got != "" {
			t.Errorf("Words(%v) = %q, want empty", in, got)
		}
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(3); got != "марта" {
		t.Fatalf("got %q", got)
	}
	if got := MonthName(1); got != "января" {
		t.Fatalf("got %q", got)
	}
	if got := MonthName(12); got != "декабря" {
		t.Fatalf("got %q", got)
	}
	for _, n := range []int{0, 13, -1} {
		if got := MonthName(n); got != "" {
			t.Errorf("MonthName(%d) = %q, want empty", n, got)
		}
	}
}
