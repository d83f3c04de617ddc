// Command convert-template converts a legacy document with <placeholder>
// markers into a brace-token template, merging text runs the authoring
// tool split.
package main

import (
	"flag"
	"log"
	"os"

	"contract-docgen/services"
)

func main() {
	var (
		inputPath  string
		outputPath string
		list       bool
	)

	flag.StringVar(&inputPath, "in", "", "path to the legacy .docx document")
	flag.StringVar(&outputPath, "out", "", "path the converted template is written to")
	flag.BoolVar(&list, "list", false, "list the template's placeholders after conversion")
	flag.Parse()

	if inputPath == "" || outputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	converted, err := services.ConvertDocxToTemplate(inputPath, outputPath)
	if err != nil {
		log.Fatalf("conversion failed: %v", err)
	}
	log.Printf("converted %d text nodes: %s -> %s", converted, inputPath, outputPath)

	if list {
		names, err := services.ListPlaceholders(outputPath)
		if err != nil {
			log.Fatalf("cannot list placeholders: %v", err)
		}
		for _, name := range names {
			log.Printf("placeholder: {{%s}}", name)
		}
	}
}
