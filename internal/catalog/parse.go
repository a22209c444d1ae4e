package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

var firstInteger = regexp.MustCompile(`\d+`)

// ParseFee normalizes a raw annual fee value to a dollar amount.
// Currency symbols and whitespace are stripped, then the first embedded
// integer wins ("$95", "95.00 annual fee" and "No annual fee the first
// year, then $95" all parse to 95). "0" and "none" parse to 0.
// Returns nil when no amount can be extracted, which filters treat as
// "keep the card".
func ParseFee(raw string) *int {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "$", ""))
	if s == "" || strings.EqualFold(s, NotAvailable) {
		return nil
	}
	if s == "0" || strings.EqualFold(s, "none") {
		zero := 0
		return &zero
	}
	m := firstInteger.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &v
}

// ParseScore normalizes a raw credit score floor to an integer.
// Only fully numeric values count; "N/A", ranges, and prose return nil.
func ParseScore(raw string) *int {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, NotAvailable) {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
