package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghuser/porcelarte/services/quote/domain/models"
)

// MessageInput is everything the customer-facing quote text is built from.
type MessageInput struct {
	StoreName    string
	Customer     models.Customer
	Date         time.Time
	Lines        []models.Line
	Accessories  []models.AccessoryLine
	Totals       models.Totals
	LeadTimeDays int
	ValidityDays int
	Notes        string
}

// ComposeMessage renders the quote as chat-ready text. Section order and
// wording are consumed downstream and must stay stable.
func ComposeMessage(in MessageInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏠 *ORÇAMENTO %s*\n\n", strings.ToUpper(in.StoreName))
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", in.Customer.Name)
	fmt.Fprintf(&b, "📍 *Cidade:* %s\n", in.Customer.City)
	fmt.Fprintf(&b, "📅 *Data:* %s\n\n", in.Date.Format("02/01/2006"))

	b.WriteString("📦 *PRODUTOS:*\n")
	for i, l := range in.Lines {
		p := l.Product
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, p.Name)
		fmt.Fprintf(&b, "   • Dimensão: %s×%scm\n", p.SideACm, p.SideBCm)
		fmt.Fprintf(&b, "   • Área: %sm² (+%s%% perda)\n", l.RequestedAreaM2, l.LossPercent)
		fmt.Fprintf(&b, "   • Caixas: %d (%sm²/caixa)\n", l.RequiredBoxes, p.AreaPerBoxM2.StringFixed(3))
		fmt.Fprintf(&b, "   • Preço: R$ %s/m²\n", p.PricePerM2.StringFixed(2))
		fmt.Fprintf(&b, "   • Subtotal: R$ %s\n\n", l.Subtotal.StringFixed(2))
	}

	if len(in.Accessories) > 0 {
		b.WriteString("🔧 *ACESSÓRIOS:*\n")
		for i, a := range in.Accessories {
			fmt.Fprintf(&b, "%d. *%s*\n", i+1, a.Accessory.Name)
			fmt.Fprintf(&b, "   • Quantidade: %d\n", a.Quantity)
			fmt.Fprintf(&b, "   • Preço unit: R$ %s\n", a.Accessory.PricePerUnit.StringFixed(2))
			fmt.Fprintf(&b, "   • Subtotal: R$ %s\n\n", a.Subtotal.StringFixed(2))
		}
	}

	t := in.Totals
	b.WriteString("💰 *RESUMO FINANCEIRO:*\n")
	fmt.Fprintf(&b, "• Área total: %s\n", FormatArea(t.TotalAreaM2))
	fmt.Fprintf(&b, "• Produtos: R$ %s\n", t.ProductsValue.StringFixed(2))
	if t.AccessoriesValue.IsPositive() {
		fmt.Fprintf(&b, "• Acessórios: R$ %s\n", t.AccessoriesValue.StringFixed(2))
	}
	if t.Freight.IsPositive() {
		fmt.Fprintf(&b, "• Frete: R$ %s\n", t.Freight.StringFixed(2))
	}
	if t.Discount.IsPositive() {
		fmt.Fprintf(&b, "• Desconto: -R$ %s\n", t.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "• *TOTAL: R$ %s*\n\n", t.FinalValue.StringFixed(2))

	fmt.Fprintf(&b, "⏱️ *Prazo estimado:* %d dias úteis\n\n", in.LeadTimeDays)

	if in.Notes != "" {
		fmt.Fprintf(&b, "📝 *Observações:*\n%s\n\n", in.Notes)
	}

	fmt.Fprintf(&b, "✅ Orçamento válido por %d dias\n", in.ValidityDays)
	b.WriteString("📞 Dúvidas? Entre em contato!\n\n")
	fmt.Fprintf(&b, "*%s - Qualidade em Pisos*", in.StoreName)

	return b.String()
}
