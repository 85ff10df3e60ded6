package util

import "testing"

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone string
		want  bool
	}{
		{phone: "+1 (555) 123-4567", want: true},
		{phone: "0912345678", want: true},
		{phone: "555-1234", want: false},
		{phone: "call me maybe", want: false},
		{phone: "12345abcde", want: false},
		{phone: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			t.Parallel()

			if got := IsValidPhone(tt.phone); got != tt.want {
				t.Fatalf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
			}
		})
	}
}

func TestRoundCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "whole", amount: 25, want: "25.00"},
		{name: "float noise", amount: 0.1 + 0.2, want: "0.30"},
		{name: "three decimals up", amount: 10.005 + 0.0001, want: "10.01"},
		{name: "three decimals down", amount: 7.124, want: "7.12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Fatalf("FormatCurrency(%v) = %s, want %s", tt.amount, got, tt.want)
			}
		})
	}

	if got := RoundCurrency(0.1 + 0.2); got != 0.3 {
		t.Fatalf("RoundCurrency(0.1+0.2) = %v, want 0.3", got)
	}
}
