package services

import (
	"log"
	"regexp"
	"strings"

	"contract-docgen/models"
)

var (
	// Whitespace injected inside an angle token by the authoring tool:
	// "< nga y _ky_hop_dong >" -> "<ngay_ky_hop_dong>".
	angleSpacesPattern = regexp.MustCompile(`<\s*([a-z_][a-z0-9_\s]+)\s*>`)
	angleTokenPattern  = regexp.MustCompile(`<([a-z_][a-z0-9_]+)>`)
)

// ConvertTextTokens rewrites legacy <placeholder> syntax in a text node
// to {{placeholder}} template syntax, first compacting whitespace the
// authoring tool injected inside the angle brackets.
func ConvertTextTokens(text string) string {
	text = angleSpacesPattern.ReplaceAllStringFunc(text, func(m string) string {
		inner := angleSpacesPattern.FindStringSubmatch(m)[1]
		return "<" + strings.Join(strings.Fields(inner), "") + ">"
	})
	return angleTokenPattern.ReplaceAllString(text, "{{$1}}")
}

// ConvertDocxToTemplate converts a legacy angle-token document into a
// brace-token template at outputPath, returning the number of text nodes
// rewritten. Runs are merged first so tokens split across runs convert
// cleanly. Parts that fail to parse fall back to string-level conversion.
func ConvertDocxToTemplate(inputPath, outputPath string) (int, error) {
	parts, err := readDocxParts(inputPath)
	if err != nil {
		return 0, &models.TemplateOpenError{Path: inputPath, Err: err}
	}

	converted := 0
	for i := range parts {
		if !isWordXML(parts[i].Name) {
			continue
		}

		doc := newDocxDocument()
		if err := doc.ReadFromBytes(parts[i].Data); err != nil {
			log.Printf("Warning: could not parse %s, falling back to text conversion: %v", parts[i].Name, err)
			parts[i].Data = []byte(ConvertTextTokens(string(parts[i].Data)))
			continue
		}

		mergeParagraphRuns(doc)
		for _, t := range doc.FindElements("//w:t") {
			text := t.Text()
			if text == "" {
				continue
			}
			if next := ConvertTextTokens(text); next != text {
				t.SetText(next)
				converted++
			}
		}

		out, err := doc.WriteToBytes()
		if err != nil {
			return converted, &models.RenderError{Stage: "convert", Err: err}
		}
		parts[i].Data = out
	}

	if err := writeDocxParts(outputPath, parts); err != nil {
		return converted, &models.RenderError{Stage: "convert", Err: err}
	}
	return converted, nil
}

// ListPlaceholders reports the distinct {{name}} tokens of a template in
// first-seen order.
func ListPlaceholders(templatePath string) ([]string, error) {
	parts, err := readDocxParts(templatePath)
	if err != nil {
		return nil, &models.TemplateOpenError{Path: templatePath, Err: err}
	}

	seen := make(map[string]bool)
	var names []string
	for _, part := range parts {
		if !isWordXML(part.Name) {
			continue
		}
		for _, m := range tokenPattern.FindAllStringSubmatch(string(part.Data), -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				names = append(names, m[1])
			}
		}
	}
	return names, nil
}
