package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogmodels "github.com/ghuser/porcelarte/services/catalog/domain/models"
)

// QuoteStatus tracks a quote through its lifecycle.
type QuoteStatus string

const (
	StatusDraft     QuoteStatus = "draft"
	StatusSent      QuoteStatus = "sent"
	StatusApproved  QuoteStatus = "approved"
	StatusCancelled QuoteStatus = "cancelled"
)

// Customer identifies who the quote is for.
type Customer struct {
	Name  string
	Phone string
	City  string
}

// LineQuantities is the result of applying the loss factor to a requested area.
type LineQuantities struct {
	AreaWithLossM2 decimal.Decimal
	RequiredBoxes  int
}

// Line is one priced floor product of a quote.
type Line struct {
	Product         *catalogmodels.FloorProduct
	RequestedAreaM2 decimal.Decimal
	LossPercent     decimal.Decimal
	AreaWithLossM2  decimal.Decimal
	RequiredBoxes   int
	Subtotal        decimal.Decimal
}

// AccessorySuggestion is a suggested quantity for one accessory, with the
// coverage rule that produced it.
type AccessorySuggestion struct {
	Accessory         *catalogmodels.Accessory
	SuggestedQuantity int
	Rationale         string
}

// AccessoryLine is one priced accessory of a quote.
type AccessoryLine struct {
	Accessory *catalogmodels.Accessory
	Quantity  int
	Subtotal  decimal.Decimal
}

// Totals is the financial summary of a quote.
type Totals struct {
	TotalAreaM2      decimal.Decimal
	ProductsValue    decimal.Decimal
	AccessoriesValue decimal.Decimal
	Freight          decimal.Decimal
	Discount         decimal.Decimal
	FinalValue       decimal.Decimal
}

// Quote is a priced, not yet committed, sales proposal.
type Quote struct {
	ID           uuid.UUID
	Customer     Customer
	Lines        []Line
	Accessories  []AccessoryLine
	Suggestions  []AccessorySuggestion
	Totals       Totals
	LeadTimeDays int
	ValidUntil   time.Time
	Notes        string
	Status       QuoteStatus
	Message      string
	WhatsAppURL  string
	CreatedAt    time.Time
}

// ApprovalLine pairs a product snapshot with the boxes the quote needs.
type ApprovalLine struct {
	Product       *catalogmodels.FloorProduct
	RequiredBoxes int
}

// ApprovalDecision is the read-only verdict on a set of approval lines.
// A rejected quote is a normal result, not an error.
type ApprovalDecision struct {
	Approved bool
	Errors   []string
}
