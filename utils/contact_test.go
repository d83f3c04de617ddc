package utils

import "testing"

func TestNormalizeMultiValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"a@x.com, a@x.com; b@x.com", "a@x.com;b@x.com"},
		{"a@x.com b@x.com", "a@x.com;b@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"; , ;", ""},
		{"", ""},
		{"0901234567;0901234567, 0907654321", "0901234567;0907654321"},
	}
	for _, tc := range cases {
		if got := NormalizeMultiValue(tc.in); got != tc.want {
			t.Errorf("NormalizeMultiValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePhoneList(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"090 123 4567", "0901234567"},
		{"090.123.4567, 0907654321", "0901234567; 0907654321"},
		// 11 digits not starting with 0: kept as written, whitespace collapsed.
		{"+84 90 123  4567", "+84 90 123 4567"},
		{"090 123 4567\n0907654321", "0901234567; 0907654321"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhoneList(tc.in); got != tc.want {
			t.Errorf("NormalizePhoneList(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSplitMultiValues(t *testing.T) {
	got := SplitMultiValues("a, b;c\r\nd")
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitMultiValues = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SplitMultiValues[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
