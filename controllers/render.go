package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"contract-docgen/config"
	"contract-docgen/models"
	"contract-docgen/services"
	"contract-docgen/utils"
)

type renderContractReq struct {
	TemplatePath string            `json:"template_path"`
	OutputPath   string            `json:"output_path"`
	Context      map[string]string `json:"context"`
	BoldFields   []string          `json:"bold_fields"`
}

type renderCatalogueReq struct {
	TemplatePath string            `json:"template_path"`
	OutputPath   string            `json:"output_path"`
	SheetName    string            `json:"sheet_name"`
	Context      map[string]string `json:"context"`
}

type convertTemplateReq struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
}

// resolveUnderStorage rejects paths escaping the configured storage root.
func resolveUnderStorage(p string) (string, error) {
	if p == "" {
		return "", errors.New("path is required")
	}
	if filepath.IsAbs(p) || strings.Contains(p, "..") {
		return "", errors.New("path must be relative to the storage directory")
	}
	return filepath.Join(config.StorageDir(), p), nil
}

// RenderContract renders a contract/annex docx from a template and a flat
// context map.
func RenderContract(c *gin.Context) {
	var req renderContractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	templatePath, err := resolveUnderStorage(req.TemplatePath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template_path: " + err.Error()})
		return
	}
	outputPath, err := resolveUnderStorage(req.OutputPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "output_path: " + err.Error()})
		return
	}

	ctx := models.PlainContext(req.Context)
	for _, field := range req.BoldFields {
		if v, ok := ctx[field]; ok && v.Text != "" {
			ctx[field] = models.Bold(v.Text)
		}
	}

	warnings, err := services.RenderContractDocx(templatePath, outputPath, ctx)
	if err != nil {
		var openErr *models.TemplateOpenError
		if errors.As(err, &openErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"output_path": req.OutputPath,
		"warnings":    warningStrings(warnings),
	})
}

// RenderCatalogue substitutes <name> tokens in a catalogue spreadsheet
// template.
func RenderCatalogue(c *gin.Context) {
	var req renderCatalogueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	templatePath, err := resolveUnderStorage(req.TemplatePath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template_path: " + err.Error()})
		return
	}
	outputPath, err := resolveUnderStorage(req.OutputPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "output_path: " + err.Error()})
		return
	}

	if err := services.RenderCatalogueXlsx(templatePath, outputPath, models.PlainContext(req.Context), req.SheetName); err != nil {
		var openErr *models.TemplateOpenError
		if errors.As(err, &openErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"output_path": req.OutputPath})
}

// ConvertTemplate promotes a legacy angle-token docx to a brace-token
// template.
func ConvertTemplate(c *gin.Context) {
	var req convertTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	inputPath, err := resolveUnderStorage(req.InputPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input_path: " + err.Error()})
		return
	}
	outputPath, err := resolveUnderStorage(req.OutputPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "output_path: " + err.Error()})
		return
	}

	converted, err := services.ConvertDocxToTemplate(inputPath, outputPath)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"output_path": req.OutputPath,
		"converted":   converted,
	})
}

// GetTemplatePlaceholders lists the distinct tokens of a template.
func GetTemplatePlaceholders(c *gin.Context) {
	templatePath, err := resolveUnderStorage(c.Query("template_path"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "template_path: " + err.Error()})
		return
	}

	names, err := services.ListPlaceholders(templatePath)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"placeholders": names})
}

func warningStrings(warnings []models.PartParseWarning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.String())
	}
	return out
}

type moneyContextReq struct {
	Amount     string `json:"amount"`
	VATPercent string `json:"vat_percent"`
}

// BuildMoneyContext parses a free-form amount and VAT percent and returns
// the derived money template fields.
func BuildMoneyContext(c *gin.Context) {
	var req moneyContextReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	preVAT, err := utils.ParseMoney(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount: " + err.Error()})
		return
	}

	percentRaw := strings.TrimSpace(req.VATPercent)
	if percentRaw == "" {
		percentRaw = "10"
	}
	percent, err := utils.ParseVATPercent(percentRaw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vat_percent: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.MoneyContextFields(preVAT, percent))
}

type normalizeContactReq struct {
	Emails string `json:"emails"`
	Phones string `json:"phones"`
}

// NormalizeContact canonicalizes multi-valued email and phone fields.
func NormalizeContact(c *gin.Context) {
	var req normalizeContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails":         utils.NormalizeMultiValue(req.Emails),
		"phones":         utils.NormalizeMultiValue(req.Phones),
		"phones_compact": utils.NormalizePhoneList(req.Phones),
	})
}

type normalizeChannelReq struct {
	Channel string `json:"channel"`
	Video   string `json:"video"`
}

// NormalizeChannel resolves channel/video identifier fields.
func NormalizeChannel(c *gin.Context) {
	var req normalizeChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	id, link := utils.NormalizeYoutubeChannelInput(req.Channel)
	c.JSON(http.StatusOK, gin.H{
		"channel_id":   id,
		"channel_link": link,
		"video_id":     utils.ExtractVideoID(req.Video),
	})
}
