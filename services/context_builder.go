package services

import (
	"strconv"
	"time"

	"contract-docgen/models"
	"contract-docgen/utils"
)

// BuildContractContext merges the caller's pre-normalized field map with
// the contract-date components and the signing-date key. Values arrive
// already formatted by the workflow; this layer only keys them for the
// template.
func BuildContractContext(base map[string]string, contractDate time.Time, ngayKyHopDong string) models.RenderContext {
	ctx := models.PlainContext(base)
	for k, v := range utils.DateParts(contractDate) {
		ctx[k] = models.Plain(v)
	}
	ctx["ngay_ky_hop_dong"] = models.Plain(ngayKyHopDong)
	return ctx
}

// MoneyContextFields derives the money-related template fields from a
// pre-VAT amount and VAT percentage: grouped display amounts, the words
// rendering of the total, and the percent label.
func MoneyContextFields(preVAT int64, percent float64) map[string]string {
	vat, total := utils.ApplyVAT(preVAT, percent)

	fields := map[string]string{
		"so_tien_chua_GTGT": utils.FormatMoneyNumber(preVAT),
		"thue_GTGT":         utils.FormatMoneyNumber(vat),
		"so_tien_GTGT":      utils.FormatMoneyNumber(total),
		"so_tien_bang_chu":  utils.MoneyToVietnameseWords(total),
	}
	if percent == float64(int64(percent)) {
		fields["thue_percent"] = strconv.FormatInt(int64(percent), 10)
	} else {
		fields["thue_percent"] = strconv.FormatFloat(percent, 'f', -1, 64)
	}
	return fields
}
