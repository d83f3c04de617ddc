package utils

import (
	"errors"
	"testing"

	"contract-docgen/models"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"15.600.000 VNĐ", 15600000},
		{"15,600,000 VND", 15600000},
		{"  500  ", 500},
		{"12 000", 12000},
		{"0", 0},
		{"1.234.567", 1234567},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if err != nil {
			t.Errorf("ParseMoney(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseMoneyInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "VNĐ", "abc", "12a3", "-500"} {
		if _, err := ParseMoney(in); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("ParseMoney(%q) = %v, want ErrInvalidAmount", in, err)
		}
	}
}

func TestFormatMoneyNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1.000"},
		{1234567, "1.234.567"},
		{15600000, "15.600.000"},
	}
	for _, tc := range cases {
		if got := FormatMoneyNumber(tc.in); got != tc.want {
			t.Errorf("FormatMoneyNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoneyRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, 999, 1000, 999999, 15600000, 1234567890123} {
		got, err := ParseMoney(FormatMoneyNumber(v))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip of %d = %d", v, got)
		}
	}
}

func TestFormatMoneyVND(t *testing.T) {
	if got := FormatMoneyVND(15600000); got != "15.600.000 VNĐ" {
		t.Errorf("FormatMoneyVND = %q", got)
	}
}

func TestParseVATPercent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"10", 10},
		{"8,5", 8.5},
		{"8.5", 8.5},
		{" 5 ", 5},
	}
	for _, tc := range cases {
		got, err := ParseVATPercent(tc.in)
		if err != nil {
			t.Errorf("ParseVATPercent(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseVATPercent(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "ten", "-1"} {
		if _, err := ParseVATPercent(in); !errors.Is(err, models.ErrInvalidPercent) {
			t.Errorf("ParseVATPercent(%q) = %v, want ErrInvalidPercent", in, err)
		}
	}
}

func TestApplyVAT(t *testing.T) {
	vat, total := ApplyVAT(15600000, 10)
	if vat != 1560000 {
		t.Errorf("vat = %d, want 1560000", vat)
	}
	if total != 17160000 {
		t.Errorf("total = %d, want 17160000", total)
	}
}

func TestApplyVATRoundsHalfUp(t *testing.T) {
	// 15 * 10% = 1.5 -> rounds up, never to even.
	vat, total := ApplyVAT(15, 10)
	if vat != 2 || total != 17 {
		t.Errorf("ApplyVAT(15, 10) = (%d, %d), want (2, 17)", vat, total)
	}

	vat, _ = ApplyVAT(25, 10)
	if vat != 3 {
		t.Errorf("ApplyVAT(25, 10) vat = %d, want 3", vat)
	}
}
