package services

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "R$ 0,00"},
		{"7.5", "R$ 7,50"},
		{"1234.56", "R$ 1.234,56"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"0.005", "R$ 0,01"},
		{"-50.5", "-R$ 50,50"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatCurrency(dec(tt.in))
			if got != tt.want {
				t.Fatalf("FormatCurrency(%s) = %q, want %q", tt.in, got, tt.want)
			}

			back, err := ParseCurrency(got)
			if err != nil {
				t.Fatalf("ParseCurrency(%q): %v", got, err)
			}
			if !back.Equal(dec(tt.in).Round(2)) {
				t.Fatalf("round trip %s -> %q -> %s", tt.in, got, back)
			}
		})
	}
}

func TestParseCurrency_NonBreakingSpace(t *testing.T) {
	got, err := ParseCurrency("R$\u00a01.234,56")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(dec("1234.56")) {
		t.Fatalf("got %s", got)
	}
}

func TestParseCurrency_Invalid(t *testing.T) {
	if _, err := ParseCurrency("R$ abc"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFormatArea(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"55", "55.00m²"},
		{"1.488", "1.49m²"},
		{"0", "0.00m²"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := FormatArea(dec(tt.in))
			if got != tt.want {
				t.Fatalf("FormatArea(%s) = %q, want %q", tt.in, got, tt.want)
			}
			back, err := ParseArea(got)
			if err != nil {
				t.Fatalf("ParseArea(%q): %v", got, err)
			}
			if !back.Equal(dec(tt.in).Round(2)) {
				t.Fatalf("round trip %s -> %q -> %s", tt.in, got, back)
			}
		})
	}
}
