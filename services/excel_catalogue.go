package services

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"contract-docgen/models"
)

// DefaultCatalogueSheet is the sheet catalogue templates keep their final
// layout on.
const DefaultCatalogueSheet = "Final"

var cellTokenPattern = regexp.MustCompile(`<\s*([^<>\s]+)\s*>`)

// RenderCatalogueXlsx copies the catalogue template workbook to outputPath
// and substitutes every <name> token in the string cells of the named
// sheet (DefaultCatalogueSheet when empty, the first sheet when absent).
// Spreadsheet cells are self-contained value nodes, so no run merging is
// involved; a missing context key substitutes the empty string.
func RenderCatalogueXlsx(templatePath, outputPath string, ctx models.RenderContext, sheetName string) error {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return &models.TemplateOpenError{Path: templatePath, Err: err}
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = DefaultCatalogueSheet
	}
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil || idx < 0 {
		sheetName = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return &models.RenderError{Stage: "catalogue", Err: err}
	}

	for ri, row := range rows {
		for ci, cell := range row {
			if !strings.Contains(cell, "<") || !strings.Contains(cell, ">") {
				continue
			}
			replaced := cellTokenPattern.ReplaceAllStringFunc(cell, func(m string) string {
				name := strings.TrimSpace(cellTokenPattern.FindStringSubmatch(m)[1])
				v, _ := ctx.Resolve(name)
				return v.Text
			})
			addr, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				continue
			}
			if err := f.SetCellValue(sheetName, addr, replaced); err != nil {
				return &models.RenderError{Stage: "catalogue", Err: err}
			}
		}
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return &models.RenderError{Stage: "catalogue", Err: err}
	}

	tmpPath := filepath.Join(dir, ".catalogue-"+uuid.NewString()+".tmp")
	defer os.Remove(tmpPath)
	if err := f.SaveAs(tmpPath); err != nil {
		return &models.RenderError{Stage: "catalogue", Err: err}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return &models.RenderError{Stage: "catalogue", Err: err}
	}
	return nil
}
