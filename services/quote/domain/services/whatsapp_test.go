package services_test

import (
	"errors"
	"strings"
	"testing"

	quotedomain "github.com/ghuser/porcelarte/services/quote/domain"
	"github.com/ghuser/porcelarte/services/quote/domain/services"
)

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		wantPrefix string
	}{
		{"local digits", "11999990000", "https://wa.me/5511999990000?text="},
		{"formatted local", "(11) 98765-4321", "https://wa.me/5511987654321?text="},
		{"international", "+351 912 345 678", "https://wa.me/351912345678?text="},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := services.WhatsAppLink(tc.phone, "Olá")
			if err != nil {
				t.Fatalf("WhatsAppLink: %v", err)
			}
			if !strings.HasPrefix(got, tc.wantPrefix) {
				t.Fatalf("link = %q, want prefix %q", got, tc.wantPrefix)
			}
		})
	}
}

func TestWhatsAppLink_EncodesText(t *testing.T) {
	got, err := services.WhatsAppLink("11999990000", "TOTAL: R$ 10 & frete")
	if err != nil {
		t.Fatalf("WhatsAppLink: %v", err)
	}
	if want := "?text=TOTAL%3A%20R%24%2010%20%26%20frete"; !strings.HasSuffix(got, want) {
		t.Fatalf("link = %q, want suffix %q", got, want)
	}
}

func TestWhatsAppLink_EmptyPhone(t *testing.T) {
	got, err := services.WhatsAppLink("  ", "Olá")
	if err != nil || got != "" {
		t.Fatalf("expected empty link and no error, got %q, %v", got, err)
	}
}

func TestWhatsAppLink_Invalid(t *testing.T) {
	for _, phone := range []string{"abc", "12"} {
		if _, err := services.WhatsAppLink(phone, "Olá"); !errors.Is(err, quotedomain.ErrInvalidPhone) {
			t.Errorf("WhatsAppLink(%q) error = %v, want ErrInvalidPhone", phone, err)
		}
	}
}
