package services

import (
	"strings"

	"github.com/beevik/etree"
)

// newDocxDocument returns an empty document configured to round-trip OOXML
// parts without re-ordering attributes or collapsing end tags.
func newDocxDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalAttrVal: true,
		CanonicalText:    true,
		CanonicalEndTags: true,
	}
	return doc
}

// mergeParagraphRuns concatenates every text run of each paragraph into
// the paragraph's first run. The authoring tool splits a single
// placeholder like {{ngay_ky_hop_dong}} across 3-4 runs at spell-check
// boundaries; substitution must see one contiguous string per paragraph
// or it silently fails to match. Text nodes without content count as
// empty strings.
func mergeParagraphRuns(doc *etree.Document) {
	for _, p := range doc.FindElements("//w:p") {
		texts := p.FindElements(".//w:t")
		if len(texts) <= 1 {
			continue
		}

		var merged strings.Builder
		for _, t := range texts {
			merged.WriteString(t.Text())
		}

		// Double-escaped angle brackets survive as literal entities in
		// the text content; decode them so the repair output reads as
		// plain bracket characters.
		content := merged.String()
		content = strings.ReplaceAll(content, "&lt;", "<")
		content = strings.ReplaceAll(content, "&gt;", ">")

		texts[0].SetText(content)
		for _, t := range texts[1:] {
			t.SetText("")
		}
	}
}
