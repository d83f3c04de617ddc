// Command render-doc renders a contract template into a finished document
// using a flat JSON context file.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"contract-docgen/models"
	"contract-docgen/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var (
		templatePath string
		outputPath   string
		contextPath  string
		sheetName    string
		catalogue    bool
	)

	flag.StringVar(&templatePath, "template", "", "path to the template archive (.docx or .xlsx)")
	flag.StringVar(&outputPath, "out", "", "path the rendered document is written to")
	flag.StringVar(&contextPath, "context", "", "path to a JSON file with the flat token context")
	flag.StringVar(&sheetName, "sheet", "", "catalogue sheet name (xlsx only, defaults to 'Final')")
	flag.BoolVar(&catalogue, "catalogue", false, "render a catalogue spreadsheet instead of a contract document")
	flag.Parse()

	if templatePath == "" || outputPath == "" || contextPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	raw, err := os.ReadFile(contextPath)
	if err != nil {
		log.Fatalf("cannot read context file: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Fatalf("invalid context JSON: %v", err)
	}
	ctx := models.PlainContext(fields)

	if catalogue {
		if err := services.RenderCatalogueXlsx(templatePath, outputPath, ctx, sheetName); err != nil {
			log.Fatalf("catalogue render failed: %v", err)
		}
		log.Printf("rendered catalogue %s", outputPath)
		return
	}

	warnings, err := services.RenderContractDocx(templatePath, outputPath, ctx)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	log.Printf("rendered %s", outputPath)
}
