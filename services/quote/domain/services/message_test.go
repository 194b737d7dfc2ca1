package services

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

func TestComposeMessage_FullQuote(t *testing.T) {
	line, err := ComputeLine(calacata(), dec("50"), dec("10"))
	if err != nil {
		t.Fatalf("ComputeLine: %v", err)
	}
	accLine, err := PriceAccessory(&catalogmodels.Accessory{Name: "Argamassa AC-III", PricePerUnit: dec("32.9")}, 13)
	if err != nil {
		t.Fatalf("PriceAccessory: %v", err)
	}
	lines := []models.Line{line}
	accessories := []models.AccessoryLine{accLine}

	got := ComposeMessage(MessageInput{
		StoreName:    "Porcelarte",
		Customer:     models.Customer{Name: "Maria Souza", Phone: "11999990000", City: "Campinas"},
		Date:         time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		Lines:        lines,
		Accessories:  accessories,
		Totals:       ComputeTotals(lines, accessories, dec("150"), dec("100")),
		LeadTimeDays: 7,
		ValidityDays: 15,
		Notes:        "Entregar pela manhã",
	})

	want := "🏠 *ORÇAMENTO PORCELARTE*\n\n" +
		"👤 *Cliente:* Maria Souza\n" +
		"📍 *Cidade:* Campinas\n" +
		"📅 *Data:* 10/03/2025\n\n" +
		"📦 *PRODUTOS:*\n" +
		"1. *Calacata Bianco 62×120*\n" +
		"   • Dimensão: 62×120cm\n" +
		"   • Área: 50m² (+10% perda)\n" +
		"   • Caixas: 37 (1.488m²/caixa)\n" +
		"   • Preço: R$ 129.90/m²\n" +
		"   • Subtotal: R$ 7144.50\n\n" +
		"🔧 *ACESSÓRIOS:*\n" +
		"1. *Argamassa AC-III*\n" +
		"   • Quantidade: 13\n" +
		"   • Preço unit: R$ 32.90\n" +
		"   • Subtotal: R$ 427.70\n\n" +
		"💰 *RESUMO FINANCEIRO:*\n" +
		"• Área total: 55.00m²\n" +
		"• Produtos: R$ 7144.50\n" +
		"• Acessórios: R$ 427.70\n" +
		"• Frete: R$ 150.00\n" +
		"• Desconto: -R$ 100.00\n" +
		"• *TOTAL: R$ 7622.20*\n\n" +
		"⏱️ *Prazo estimado:* 7 dias úteis\n\n" +
		"📝 *Observações:*\nEntregar pela manhã\n\n" +
		"✅ Orçamento válido por 15 dias\n" +
		"📞 Dúvidas? Entre em contato!\n\n" +
		"*Porcelarte - Qualidade em Pisos*"

	if got != want {
		t.Fatalf("message mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestComposeMessage_OmitsEmptySections(t *testing.T) {
	line, _ := ComputeLine(calacata(), dec("12.5"), dec("0"))
	lines := []models.Line{line}

	got := ComposeMessage(MessageInput{
		StoreName:    "Porcelarte",
		Customer:     models.Customer{Name: "João", City: "Santos"},
		Date:         time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Lines:        lines,
		Totals:       ComputeTotals(lines, nil, decimal.Zero, decimal.Zero),
		LeadTimeDays: 3,
		ValidityDays: 15,
	})

	for _, absent := range []string{"ACESSÓRIOS", "• Acessórios", "• Frete", "• Desconto", "Observações"} {
		if strings.Contains(got, absent) {
			t.Errorf("message should not contain %q", absent)
		}
	}
	for _, present := range []string{"📅 *Data:* 02/01/2025", "• Área: 12.5m² (+0% perda)", "• Caixas: 9 (1.488m²/caixa)", "3 dias úteis"} {
		if !strings.Contains(got, present) {
			t.Errorf("message should contain %q", present)
		}
	}
}
