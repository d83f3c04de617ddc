package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ddmmyyyyPattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)

// DateParts splits a date into the zero-padded context components used by
// contract templates.
func DateParts(t time.Time) map[string]string {
	return map[string]string{
		"ngay":  fmt.Sprintf("%02d", t.Day()),
		"thang": fmt.Sprintf("%02d", int(t.Month())),
		"nam":   strconv.Itoa(t.Year()),
	}
}

// FormatDDMMYYYY re-formats a loosely written date string into dd/mm/yyyy.
// "-" and "." separators are accepted; anything unrecognized is returned
// unchanged.
func FormatDDMMYYYY(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}

	normalized := strings.ReplaceAll(raw, "-", "/")
	normalized = strings.ReplaceAll(normalized, ".", "/")

	m := ddmmyyyyPattern.FindStringSubmatch(normalized)
	if m == nil {
		return raw
	}
	d, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	y, _ := strconv.Atoi(m[3])
	return fmt.Sprintf("%02d/%02d/%04d", d, mo, y)
}

// NormalizeHHMMSS validates and zero-pads a duration/timestamp written as
// hh:mm:ss or mm:ss.
func NormalizeHHMMSS(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", nil
	}

	parts := strings.Split(t, ":")
	var hh, mm, ss int
	var err error
	switch len(parts) {
	case 2:
		if mm, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return "", fmt.Errorf("invalid duration '%s'", s)
		}
		if ss, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return "", fmt.Errorf("invalid duration '%s'", s)
		}
	case 3:
		if hh, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
			return "", fmt.Errorf("invalid duration '%s'", s)
		}
		if mm, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
			return "", fmt.Errorf("invalid duration '%s'", s)
		}
		if ss, err = strconv.Atoi(strings.TrimSpace(parts[2])); err != nil {
			return "", fmt.Errorf("invalid duration '%s'", s)
		}
	default:
		return "", fmt.Errorf("duration must be hh:mm:ss or mm:ss, got '%s'", s)
	}

	if mm < 0 || mm >= 60 || ss < 0 || ss >= 60 || hh < 0 {
		return "", fmt.Errorf("duration out of range '%s'", s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hh, mm, ss), nil
}

// NormalizeTimeRange validates a "start - end" pair of hh:mm:ss values.
func NormalizeTimeRange(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", nil
	}

	tt := strings.ReplaceAll(t, "–", "-")
	parts := strings.Split(tt, "-")
	if len(parts) != 2 {
		return "", fmt.Errorf("time range must be 'hh:mm:ss - hh:mm:ss', got '%s'", s)
	}

	start, err := NormalizeHHMMSS(parts[0])
	if err != nil {
		return "", err
	}
	end, err := NormalizeHHMMSS(parts[1])
	if err != nil {
		return "", err
	}
	return start + " - " + end, nil
}

// ContractNoPrefix returns the leading segment of a contract number
// ("123/2025/HĐQTG" -> "123"), used for the short-number context key.
func ContractNoPrefix(contractNo string) string {
	if contractNo == "" {
		return ""
	}
	return strings.SplitN(contractNo, "/", 2)[0]
}
