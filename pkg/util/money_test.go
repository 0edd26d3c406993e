package util

import "testing"

func TestFormatMoneySmall(t *testing.T) {
	if got := FormatMoney(8.5); got != "8.50" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatMoneyThousands(t *testing.T) {
	if got := FormatMoney(8500); got != "8,500.00" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatMoneyMillions(t *testing.T) {
	if got := FormatMoney(1234567.891); got != "1,234,567.89" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestFormatMoneyNegative(t *testing.T) {
	if got := FormatMoney(-536.42); got != "-536.42" {
		t.Fatalf("unexpected %q", got)
	}
}
