// utils/money.go - VND money parsing and formatting
package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"contract-docgen/models"
)

var moneyDigitsPattern = regexp.MustCompile(`^[0-9]+$`)

// ParseMoney parses a free-form VND string ("15.600.000 VNĐ") into a
// non-negative integer amount. Grouping dots/commas, internal whitespace
// and a trailing currency marker are stripped first.
func ParseMoney(s string) (int64, error) {
	raw := strings.TrimSpace(s)
	raw = strings.ReplaceAll(raw, "VNĐ", "")
	raw = strings.ReplaceAll(raw, "VND", "")
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.Join(strings.Fields(raw), "")

	if raw == "" || !moneyDigitsPattern.MatchString(raw) {
		return 0, models.ErrInvalidAmount
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.ErrInvalidAmount
	}
	return v, nil
}

// FormatMoneyNumber renders v with "." as the thousands separator
// (Vietnamese convention), no currency suffix.
func FormatMoneyNumber(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	s := strconv.FormatInt(v, 10)
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return sign + strings.Join(groups, ".")
}

// FormatMoneyVND renders v as a grouped number with the "VNĐ" suffix.
func FormatMoneyVND(v int64) string {
	return FormatMoneyNumber(v) + " VNĐ"
}

// ParseVATPercent parses a VAT percentage that may use a decimal comma
// ("8,5" or "10").
func ParseVATPercent(s string) (float64, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if raw == "" {
		return 0, models.ErrInvalidPercent
	}
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil || p < 0 {
		return 0, models.ErrInvalidPercent
	}
	return p, nil
}

// ApplyVAT derives the VAT amount and the VAT-inclusive total from a
// pre-VAT amount. The VAT amount is rounded half-up to the nearest đồng;
// .5 boundaries always round away from zero, never to even.
func ApplyVAT(preVAT int64, percent float64) (vat int64, total int64) {
	vat = int64(math.Floor(float64(preVAT)*percent/100.0 + 0.5))
	total = preVAT + vat
	return vat, total
}
