package services

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contract-docgen/models"
)

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `</w:body></w:document>`

// writeDocxFixture builds a minimal docx archive from named parts.
func writeDocxFixture(t *testing.T, path string, parts map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	names := []string{"[Content_Types].xml", "word/document.xml"}
	for name := range parts {
		if name != "[Content_Types].xml" && name != "word/document.xml" {
			names = append(names, name)
		}
	}
	for _, name := range names {
		data, ok := parts[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create part %s: %v", name, err)
		}
		if _, err := w.Write([]byte(data)); err != nil {
			t.Fatalf("write part %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
}

func readPart(t *testing.T, path, name string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in %s", name, path)
	return ""
}

func paragraph(runs ...string) string {
	var sb strings.Builder
	sb.WriteString("<w:p>")
	for _, r := range runs {
		sb.WriteString("<w:r><w:t>")
		sb.WriteString(r)
		sb.WriteString("</w:t></w:r>")
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

func TestRenderContractDocxSubstitutesTokens(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.docx")
	outputPath := filepath.Join(dir, "out", "contract.docx")

	body := paragraph("Số hợp đồng: {{so_hop_dong}}") +
		// Token split across three runs by the authoring tool.
		paragraph("Ngày ký: {{ng", "ay_ky_hop_", "dong}}") +
		// Legacy angle-bracket artifact left by a lossy conversion.
		paragraph("Kênh: &lt;ten_kenh&gt;") +
		// Unknown token must resolve to empty, not error.
		paragraph("Ghi chú: {{khong_ton_tai}}")

	writeDocxFixture(t, templatePath, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentHeader + body + documentFooter,
	})

	ctx := models.PlainContext(map[string]string{
		"so_hop_dong":      "123/2025/HĐQTG",
		"ngay_ky_hop_dong": "05/01/2025",
		"ten_kenh":         "Kênh Thiếu Nhi",
	})

	warnings, err := RenderContractDocx(templatePath, outputPath, ctx)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	out := readPart(t, outputPath, "word/document.xml")
	for _, want := range []string{"123/2025/HĐQTG", "05/01/2025", "Kênh Thiếu Nhi", "Ghi chú: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	for _, leftover := range []string{"{{", "}}", "&lt;ten_kenh&gt;", "khong_ton_tai"} {
		if strings.Contains(out, leftover) {
			t.Errorf("output still contains %q", leftover)
		}
	}
}

func TestRenderContractDocxBoldsSignatureFields(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.docx")
	outputPath := filepath.Join(dir, "contract.docx")

	body := paragraph("Người đại diện: {{nguoi_dai_dien}}") +
		paragraph("Chức vụ: {{chuc_vu}}")
	writeDocxFixture(t, templatePath, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentHeader + body + documentFooter,
	})

	ctx := models.PlainContext(map[string]string{
		"nguoi_dai_dien": "Nguyễn Văn A",
		"chuc_vu":        "Giám đốc",
	})

	if _, err := RenderContractDocx(templatePath, outputPath, ctx); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := readPart(t, outputPath, "word/document.xml")
	if !strings.Contains(out, "Nguyễn Văn A") || !strings.Contains(out, "Giám đốc") {
		t.Fatal("signature values missing from output")
	}
	// One bold run per substituted signature value; the labels before the
	// values stay unemphasised.
	if got := strings.Count(out, "<w:b/>") + strings.Count(out, "<w:b></w:b>"); got != 2 {
		t.Errorf("expected exactly 2 bold runs, found %d", got)
	}
}

func TestRenderContractDocxStripsVisualArtifacts(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.docx")
	outputPath := filepath.Join(dir, "contract.docx")

	body := `<w:p><w:r><w:rPr>` +
		`<w:highlight w:val="yellow"/>` +
		`<w:shd w:val="clear" w:fill="FFFF00"/>` +
		`<w:color w:val="FF0000"/>` +
		`</w:rPr><w:t>{{ten_kenh}}</w:t></w:r></w:p>`
	writeDocxFixture(t, templatePath, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentHeader + body + documentFooter,
	})

	ctx := models.PlainContext(map[string]string{"ten_kenh": "Kênh A"})
	if _, err := RenderContractDocx(templatePath, outputPath, ctx); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := readPart(t, outputPath, "word/document.xml")
	if strings.Contains(out, "w:highlight") {
		t.Error("highlight markup leaked into output")
	}
	if strings.Contains(out, "w:shd") {
		t.Error("shading markup leaked into output")
	}
	if strings.Contains(out, "FF0000") {
		t.Error("explicit color was not forced to black")
	}
	if !strings.Contains(out, "000000") {
		t.Error("color element missing black value")
	}
}

func TestRenderContractDocxTolerantOfMalformedPart(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.docx")
	outputPath := filepath.Join(dir, "contract.docx")

	malformed := documentHeader + "<w:p><w:r><w:t>truncated"
	writeDocxFixture(t, templatePath, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentHeader + paragraph("{{ten_kenh}}") + documentFooter,
		"word/broken.xml":     malformed,
	})

	ctx := models.PlainContext(map[string]string{"ten_kenh": "Kênh A"})
	warnings, err := RenderContractDocx(templatePath, outputPath, ctx)
	if err != nil {
		t.Fatalf("render must not fail on a malformed part: %v", err)
	}
	if len(warnings) == 0 {
		t.Fatal("expected a part parse warning")
	}

	if got := readPart(t, outputPath, "word/broken.xml"); got != malformed {
		t.Error("malformed part was not passed through byte-for-byte")
	}
	if out := readPart(t, outputPath, "word/document.xml"); !strings.Contains(out, "Kênh A") {
		t.Error("well-formed part missing substitution")
	}
}

func TestRenderContractDocxMissingTemplateIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, err := RenderContractDocx(filepath.Join(dir, "missing.docx"), filepath.Join(dir, "out.docx"), nil)
	if err == nil {
		t.Fatal("expected TemplateOpenError")
	}
	var openErr *models.TemplateOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected TemplateOpenError, got %T", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.docx")); !os.IsNotExist(statErr) {
		t.Error("no output file may survive a failed render")
	}
}

func TestRenderContractDocxLeavesTemplateUntouched(t *testing.T) {
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "template.docx")
	outputPath := filepath.Join(dir, "contract.docx")

	writeDocxFixture(t, templatePath, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   documentHeader + paragraph("{{ten_kenh}}") + documentFooter,
	})

	before, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatal(err)
	}

	ctx := models.PlainContext(map[string]string{"ten_kenh": "Kênh A"})
	if _, err := RenderContractDocx(templatePath, outputPath, ctx); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	after, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("source template was modified")
	}
}
