package models

// ReplenishmentSuggestion is a recommended purchase for a product at or below its minimum.
type ReplenishmentSuggestion struct {
	Product           Product
	CurrentStock      int
	MinStock          int
	SuggestedPurchase int
}

// ImportResult summarizes a CSV import. Success is true only when no row failed.
type ImportResult struct {
	Success bool
	Created int
	Updated int
	Errors  []string
}

// FloorProductFilter narrows floor product listings. Zero values match everything.
type FloorProductFilter struct {
	Search       string
	Finish       Finish
	Active       *bool
	LowStockOnly bool
}

// AccessoryFilter narrows accessory listings.
type AccessoryFilter struct {
	Search       string
	Kind         AccessoryKind
	Active       *bool
	LowStockOnly bool
}
