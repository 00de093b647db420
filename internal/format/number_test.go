package format

import (
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		want string
	}{
		{"empty", "", Plain, "0"},
		{"empty fee", "", LastTxFee, "0"},
		{"small integer", "42", Plain, "42"},
		{"grouped integer", "1234567", Plain, "1 234 567"},
		{"integer with separators", "1,234,567", Plain, "1 234 567"},
		{"plain keeps fraction", "12.345", Plain, "12.345"},
		{"plain keeps long fraction", "1234.123456789", Plain, "1 234.123456789"},
		{"fee pads to 2", "1234.5", Fee, "1 234.50"},
		{"fee rounds to 2", "0.12789", Fee, "0.13"},
		{"last fee rounds to 5", "1234.123456", LastTxFee, "1 234.12346"},
		{"last fee pads to 5", "0.1", LastTxFee, "0.10000"},
		{"last fee with unit", "0.00012345 BTC", LastTxFee, "0.00012"},
		{"fee exact tie rounds up", "1.125", Fee, "1.13"},
		{"fee rounds on binary value", "1.005", Fee, "1.01"},
		{"fee carry is dropped", "1.999", Fee, "1.00"},
		{"fee empty fraction", "12.", Fee, "12.00"},
		{"plain empty fraction", "12.", Plain, "12."},
		{"only first fraction used", "1.2.3", Plain, "1.2"},
		{"no digits", "N/A", Plain, ""},
		{"currency symbols", "$ 9 876.5 BTC", Fee, "9 876.50"},
		{"fee integer untouched", "1500", Fee, "1 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatNumber(tt.raw, tt.kind)
			if got != tt.want {
				t.Errorf("FormatNumber(%q, %v) = %q, want %q", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "1"},
		{"12", "12"},
		{"123", "123"},
		{"1234", "1 234"},
		{"12345", "12 345"},
		{"123456", "123 456"},
		{"1234567", "1 234 567"},
		{"24277510", "24 277 510"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := GroupThousands(tt.input); got != tt.want {
				t.Errorf("GroupThousands(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorLatency(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{120 * time.Millisecond, "120ms"},
		{450 * time.Millisecond, "450ms"},
		{2 * time.Second, "2000ms"},
	}
	for _, tt := range tests {
		if got := ColorLatency(tt.d); got != tt.want {
			t.Errorf("ColorLatency(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
