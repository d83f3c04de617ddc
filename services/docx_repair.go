package services

import "regexp"

// repairRule is one (pattern, replacement) entry of the ordered repair
// table. Order matters: the specific splice fixes must run before the
// generic angle-bracket rules.
type repairRule struct {
	pattern *regexp.Regexp
	repl    string
}

// Known placeholder corruptions introduced by the template authoring tool
// and an earlier lossy conversion pass. Observed in live templates:
// "&lt;{{so_hop_dong}}_day_du&gt;", "&lt;{{so_hop_dong}}&gt;_day_du" and
// "&lt;nguoi_thuc_hien_{{email}}&gt;".
var repairRules = []repairRule{
	{regexp.MustCompile(`(?i)&lt;\s*\{\{\s*so_hop_dong\s*\}\}\s*(?:_day_du\s*&gt;|&gt;\s*_day_du)`), "{{so_hop_dong_day_du}}"},
	{regexp.MustCompile(`(?i)<\s*\{\{\s*so_hop_dong\s*\}\}\s*(?:_day_du\s*>|>\s*_day_du)`), "{{so_hop_dong_day_du}}"},
	{regexp.MustCompile(`(?i)&lt;\s*nguoi_thuc_hien_\s*\{\{\s*email\s*\}\}\s*&gt;`), "{{nguoi_thuc_hien_email}}"},
	{regexp.MustCompile(`(?i)<\s*nguoi_thuc_hien_\s*\{\{\s*email\s*\}\}\s*>`), "{{nguoi_thuc_hien_email}}"},

	// Stray angle brackets wrapped around an already-correct token.
	{regexp.MustCompile(`&lt;\s*(\{\{[^{}]+\}\})\s*&gt;`), "$1"},
	{regexp.MustCompile(`<\s*(\{\{[^{}]+\}\})\s*>`), "$1"},

	// Legacy angle-bracket placeholders promoted to brace-token syntax.
	{regexp.MustCompile(`&lt;\s*([a-zA-Z0-9_\-]+)\s*&gt;`), "{{$1}}"},
	{regexp.MustCompile(`<\s*([a-zA-Z0-9_\-]+)\s*>`), "{{$1}}"},
}

// RepairPlaceholders applies the repair table to one XML part. Every rule
// is global, and the full sequence is idempotent: none of the rules can
// match its own output or the output of an earlier rule.
func RepairPlaceholders(xmlText string) string {
	for _, rule := range repairRules {
		xmlText = rule.pattern.ReplaceAllString(xmlText, rule.repl)
	}
	return xmlText
}

// repairParts runs the repair table over every document-body part of the
// archive in place. Repair is pure string substitution, so it cannot fail
// on malformed parts; a part with no matches passes through unchanged.
func repairParts(parts []docxPart) {
	for i := range parts {
		if !isWordXML(parts[i].Name) {
			continue
		}
		repaired := RepairPlaceholders(string(parts[i].Data))
		parts[i].Data = []byte(repaired)
	}
}
