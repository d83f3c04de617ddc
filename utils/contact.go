// utils/contact.go - multi-valued email/phone normalization
package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var multiValueSplitter = regexp.MustCompile(`[;,\s]+`)

// NormalizeMultiValue canonicalizes a mixed-delimiter list (";", ",",
// whitespace): parts are trimmed, empties dropped, duplicates removed
// keeping first-seen order, and the result rejoined with ";". This is the
// canonical variant, applied to email and phone lists alike.
func NormalizeMultiValue(s string) string {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return ""
	}

	seen := make(map[string]bool)
	var out []string
	for _, p := range multiValueSplitter.Split(raw, -1) {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return strings.Join(out, ";")
}

// SplitMultiValues splits a list field on ";", "," and line breaks without
// deduplicating. Used by the digit-compaction phone variant below.
func SplitMultiValues(s string) []string {
	if s == "" {
		return nil
	}
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	normalized = strings.ReplaceAll(normalized, ",", ";")
	normalized = strings.ReplaceAll(normalized, "\n", ";")

	var out []string
	for _, p := range strings.Split(normalized, ";") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizePhoneList is the digit-compaction variant kept alongside
// NormalizeMultiValue: each part keeps only its digits when the compacted
// form looks like a local number (10-11 digits, leading 0), otherwise the
// whitespace-normalized original text is kept. Parts are rejoined with
// "; ". Call sites disagree on phone formatting, so both variants are
// part of the public surface.
func NormalizePhoneList(s string) string {
	parts := SplitMultiValues(strings.TrimSpace(s))
	if len(parts) == 0 {
		return ""
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		var compact strings.Builder
		for _, r := range p {
			if unicode.IsDigit(r) {
				compact.WriteRune(r)
			}
		}
		c := compact.String()
		if (len(c) == 10 || len(c) == 11) && strings.HasPrefix(c, "0") {
			out = append(out, c)
		} else {
			out = append(out, strings.Join(strings.Fields(p), " "))
		}
	}
	return strings.Join(out, "; ")
}
