package parser

import (
	"regexp"
	"testing"
)

func TestCleanCurrency(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		nil_ bool
	}{
		{name: "simple", in: "150,50", want: "150.5"},
		{name: "thousands separator", in: "3.340,61", want: "3340.61"},
		{name: "currency prefix", in: "R$ 1.234,56", want: "1234.56"},
		{name: "whitespace", in: "  89,90 ", want: "89.9"},
		{name: "garbage", in: "abc", nil_: true},
		{name: "empty", in: "", nil_: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanCurrency(tc.in)
			if tc.nil_ {
				if got != nil {
					t.Fatalf("expected nil, got %v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tc.want)
			}
			if got.String() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.String())
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid BR date", func(t *testing.T) {
		got := ParseDate("10/12/2025")
		if got == nil {
			t.Fatal("expected a date, got nil")
		}
		if got.Day() != 10 || int(got.Month()) != 12 || got.Year() != 2025 {
			t.Fatalf("wrong date parsed: %v", got)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		if got := ParseDate("31/02/2025"); got != nil {
			t.Fatalf("expected nil for impossible date, got %v", got)
		}
		if got := ParseDate("2025-12-10"); got != nil {
			t.Fatalf("expected nil for ISO format, got %v", got)
		}
	})
}

func TestMaxMoney(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)valor\s*(\d{1,3}(?:\.\d{3})*,\d{2})`),
	}
	text := "Valor 10,00 valor 3.340,61 VALOR 99,99"
	got := maxMoney(text, patterns)
	if got == nil {
		t.Fatal("expected a value, got nil")
	}
	if got.String() != "3340.61" {
		t.Fatalf("expected the largest match 3340.61, got %s", got)
	}
}

func TestFirstDate(t *testing.T) {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)Vencimento\s*(\d{2}/\d{2}/\d{4})`),
		regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
	}
	text := "emitida em 01/11/2025 Vencimento 10/12/2025"
	got := firstDate(text, patterns)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if got.Day() != 10 {
		t.Fatalf("expected the labelled date to win, got %v", got)
	}
}
