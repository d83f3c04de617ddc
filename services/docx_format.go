package services

import (
	"contract-docgen/models"
)

// FormatConfig controls the formatting post-pass. Templates are authored
// with highlight and color markup to make placeholders visible; none of
// it may leak into a generated legal document.
type FormatConfig struct {
	StripHighlight bool
	StripShading   bool
	ForceColor     string
}

// DefaultFormatConfig strips highlight and shading and forces explicit
// text color to black.
var DefaultFormatConfig = FormatConfig{
	StripHighlight: true,
	StripShading:   true,
	ForceColor:     "000000",
}

// NormalizeDocxFormatting rewrites the document at path in place,
// removing template-authoring visual artifacts from every document-body
// part per DefaultFormatConfig. Parts that fail to parse are left as-is
// and reported as warnings.
func NormalizeDocxFormatting(path string) ([]models.PartParseWarning, error) {
	return normalizeDocxFormatting(path, DefaultFormatConfig)
}

func normalizeDocxFormatting(path string, cfg FormatConfig) ([]models.PartParseWarning, error) {
	parts, err := readDocxParts(path)
	if err != nil {
		return nil, &models.RenderError{Stage: "formatting", Err: err}
	}

	var warnings []models.PartParseWarning
	for i := range parts {
		if !isWordXML(parts[i].Name) {
			continue
		}

		doc := newDocxDocument()
		if err := doc.ReadFromBytes(parts[i].Data); err != nil {
			warnings = append(warnings, models.PartParseWarning{Part: parts[i].Name, Err: err})
			continue
		}

		if cfg.StripHighlight {
			for _, el := range doc.FindElements("//w:highlight") {
				if parent := el.Parent(); parent != nil {
					parent.RemoveChild(el)
				}
			}
		}
		if cfg.StripShading {
			for _, el := range doc.FindElements("//w:shd") {
				if parent := el.Parent(); parent != nil {
					parent.RemoveChild(el)
				}
			}
		}
		if cfg.ForceColor != "" {
			for _, el := range doc.FindElements("//w:color") {
				el.RemoveAttr("w:val")
				el.CreateAttr("w:val", cfg.ForceColor)
			}
		}

		out, err := doc.WriteToBytes()
		if err != nil {
			warnings = append(warnings, models.PartParseWarning{Part: parts[i].Name, Err: err})
			continue
		}
		parts[i].Data = out
	}

	if err := writeDocxParts(path, parts); err != nil {
		return warnings, &models.RenderError{Stage: "formatting", Err: err}
	}
	return warnings, nil
}
