package services

import (
	"log"
	"regexp"

	"github.com/beevik/etree"

	"contract-docgen/models"
)

var tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Signature-block fields rendered in bold so the output visually
// distinguishes the signer's name and title.
var signatureFields = []string{"nguoi_dai_dien", "NGUOI_DAI_DIEN", "chuc_vu", "CHUC_VU"}

// RenderContractDocx renders a contract template archive into a new
// document at outputPath: repair corrupted placeholders, merge split text
// runs, substitute {{name}} tokens (signature fields in bold), then strip
// template-authoring visual artifacts from the written file.
//
// A template that cannot be opened is fatal. Individual XML parts that
// fail to parse are passed through unmodified and reported as warnings;
// the render still succeeds. The source template is never modified, and
// the caller must supply a unique output path per render.
func RenderContractDocx(templatePath, outputPath string, ctx models.RenderContext) ([]models.PartParseWarning, error) {
	parts, err := readDocxParts(templatePath)
	if err != nil {
		return nil, &models.TemplateOpenError{Path: templatePath, Err: err}
	}

	repairParts(parts)
	renderCtx := withBoldSignatures(ctx)

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

		mergeParagraphRuns(doc)
		substituteTokens(doc, renderCtx)

		out, err := doc.WriteToBytes()
		if err != nil {
			warnings = append(warnings, models.PartParseWarning{Part: parts[i].Name, Err: err})
			continue
		}
		parts[i].Data = out
	}

	if err := writeDocxParts(outputPath, parts); err != nil {
		return warnings, &models.RenderError{Stage: "write", Err: err}
	}

	formatWarnings, err := NormalizeDocxFormatting(outputPath)
	warnings = append(warnings, formatWarnings...)
	if err != nil {
		return warnings, err
	}

	for _, w := range warnings {
		log.Printf("Warning: %s: %s", templatePath, w)
	}
	return warnings, nil
}

// withBoldSignatures copies the context, promoting the signature fields to
// bold values. The caller's map is left untouched.
func withBoldSignatures(ctx models.RenderContext) models.RenderContext {
	out := make(models.RenderContext, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	for _, field := range signatureFields {
		if v, ok := out[field]; ok && v.Text != "" {
			out[field] = models.Bold(v.Text)
		}
	}
	return out
}

// textSegment is a piece of substituted run text; bold segments become
// their own emphasised runs.
type textSegment struct {
	text string
	bold bool
}

// substituteTokens resolves every {{name}} occurrence in the document's
// text runs. Unknown tokens resolve to the empty string. A run whose
// substitution includes a bold value is split into one run per segment so
// only the substituted value carries the emphasis.
func substituteTokens(doc *etree.Document, ctx models.RenderContext) {
	for _, t := range doc.FindElements("//w:t") {
		text := t.Text()
		if !tokenPattern.MatchString(text) {
			continue
		}

		segments := splitSegments(text, ctx)
		if !hasBoldSegment(segments) {
			var joined string
			for _, seg := range segments {
				joined += seg.text
			}
			t.SetText(joined)
			t.CreateAttr("xml:space", "preserve")
			continue
		}

		replaceRunWithSegments(t, segments)
	}
}

func splitSegments(text string, ctx models.RenderContext) []textSegment {
	var segments []textSegment
	last := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			segments = append(segments, textSegment{text: text[last:m[0]]})
		}
		name := text[m[2]:m[3]]
		if v, ok := ctx.Resolve(name); ok {
			segments = append(segments, textSegment{text: v.Text, bold: v.Bold})
		}
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, textSegment{text: text[last:]})
	}
	return segments
}

func hasBoldSegment(segments []textSegment) bool {
	for _, seg := range segments {
		if seg.bold && seg.text != "" {
			return true
		}
	}
	return false
}

// replaceRunWithSegments swaps the run containing t for one run per
// segment, copying the original run properties and adding w:b to the bold
// ones.
func replaceRunWithSegments(t *etree.Element, segments []textSegment) {
	run := t.Parent()
	if run == nil {
		return
	}
	paragraph := run.Parent()
	if paragraph == nil {
		return
	}

	runProps := run.SelectElement("w:rPr")
	index := run.Index()

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}

		newRun := etree.NewElement("w:r")
		var props *etree.Element
		if runProps != nil {
			props = runProps.Copy()
		} else {
			props = etree.NewElement("w:rPr")
		}
		if seg.bold && props.SelectElement("w:b") == nil {
			props.CreateElement("w:b")
		}
		newRun.AddChild(props)

		newText := newRun.CreateElement("w:t")
		newText.CreateAttr("xml:space", "preserve")
		newText.SetText(seg.text)

		paragraph.InsertChildAt(index, newRun)
		index++
	}

	paragraph.RemoveChild(run)
}
