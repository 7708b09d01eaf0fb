package parser

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CleanCurrency parses a Brazilian-format money string ("3.340,61") into
// an exact decimal. Everything except digits and the comma is stripped
// and the comma becomes the decimal separator. Unparseable input yields
// nil, never an error.
func CleanCurrency(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	clean := reNonMoney.ReplaceAllString(s, "")
	clean = strings.ReplaceAll(clean, ",", ".")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return nil
	}
	return &d
}

var reNonMoney = regexp.MustCompile(`[^\d,]`)

// ParseDate parses DD/MM/YYYY; unparseable or absent input yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// maxMoney collects every monetary match across the ordered pattern list
// and keeps the maximum. Partial and subtotal figures tend to precede
// the true total, so the largest candidate wins.
func maxMoney(text string, patterns []*regexp.Regexp) *decimal.Decimal {
	var best *decimal.Decimal
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			v := CleanCurrency(m[1])
			if v == nil {
				continue
			}
			if best == nil || v.GreaterThan(*best) {
				best = v
			}
		}
	}
	return best
}

// firstDate returns the first valid date in pattern priority order.
func firstDate(text string, patterns []*regexp.Regexp) *time.Time {
	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if d := ParseDate(m[1]); d != nil {
			return d
		}
	}
	return nil
}

// maxDate returns the latest valid date across all patterns. Used only
// by the fallback pass: the due date is usually the most future date
// near the header.
func maxDate(text string, patterns []*regexp.Regexp) *time.Time {
	var best *time.Time
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			d := ParseDate(m[1])
			if d == nil {
				continue
			}
			if best == nil || d.After(*best) {
				best = d
			}
		}
	}
	return best
}

// firstGroup returns the first submatch in pattern priority order.
func firstGroup(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); len(m) >= 2 {
			return m[1]
		}
	}
	return ""
}
