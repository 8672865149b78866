package output

import (
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	if got, want := FormatCurrency(1234.567, "USD"), "$1,234.57"; got != want {
		t.Errorf("FormatCurrency(1234.567, USD) = %q, want %q", got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	if got, want := FormatAmount(1234.567, "BRL"), "1234.57"; got != want {
		t.Errorf("FormatAmount(1234.567, BRL) = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	if got, want := FormatPercentage(0.123456), "12.35%"; got != want {
		t.Errorf("FormatPercentage(0.123456) = %q, want %q", got, want)
	}
	if got, want := FormatPercentage(-0.005), "-0.50%"; got != want {
		t.Errorf("FormatPercentage(-0.005) = %q, want %q", got, want)
	}
}
