package utils

import "strings"

var vietDigits = []string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"}

// Scale words for successive base-1000 groups, least significant first.
var vietScales = []string{"", "nghìn", "triệu", "tỷ", "nghìn tỷ", "triệu tỷ", "tỷ tỷ"}

// MoneyToVietnameseWords converts an integer VND amount into Vietnamese
// words, always suffixed with "đồng".
func MoneyToVietnameseWords(v int64) string {
	if v == 0 {
		return "không đồng"
	}
	if v < 0 {
		return "âm " + MoneyToVietnameseWords(-v)
	}

	var parts []string
	n := v
	for groupIndex := 0; n > 0 && groupIndex < len(vietScales); groupIndex++ {
		group := n % 1000
		n /= 1000
		if group == 0 {
			continue
		}

		// Non-leading groups spell their hundreds digit even when zero.
		chunk := readThreeDigits(int(group), n > 0)
		if scale := vietScales[groupIndex]; scale != "" {
			chunk = append(chunk, scale)
		}
		parts = append(chunk, parts...)
	}

	return strings.TrimSpace(strings.Join(parts, " ")) + " đồng"
}

func readThreeDigits(num int, forceHundreds bool) []string {
	hundreds := num / 100
	tens := (num / 10) % 10
	ones := num % 10

	if hundreds != 0 || forceHundreds {
		out := []string{vietDigits[hundreds], "trăm"}
		return append(out, readTwoDigits(tens, ones, true)...)
	}
	return readTwoDigits(tens, ones, false)
}

func readTwoDigits(tens, ones int, hasHundreds bool) []string {
	switch {
	case tens == 0:
		if ones == 0 {
			return nil
		}
		if hasHundreds {
			// 105 -> "một trăm lẻ năm"
			return []string{"lẻ", vietDigits[ones]}
		}
		return []string{vietDigits[ones]}

	case tens == 1:
		out := []string{"mười"}
		switch ones {
		case 0:
		case 5:
			out = append(out, "lăm")
		default:
			out = append(out, vietDigits[ones])
		}
		return out

	default:
		out := []string{vietDigits[tens], "mươi"}
		switch ones {
		case 0:
		case 1:
			out = append(out, "mốt")
		case 4:
			out = append(out, "tư")
		case 5:
			out = append(out, "lăm")
		default:
			out = append(out, vietDigits[ones])
		}
		return out
	}
}
