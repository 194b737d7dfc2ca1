package models

// StockStatus is the health of a product's stock level.
type StockStatus string

const (
	StatusOK           StockStatus = "ok"
	StatusLow          StockStatus = "low"
	StatusOutOfStock   StockStatus = "out_of_stock"
	StatusInsufficient StockStatus = "insufficient"
	StatusInactive     StockStatus = "inactive"
)

// Badge is the four-colour presentation category of a status.
type Badge string

const (
	BadgeGreen  Badge = "green"
	BadgeYellow Badge = "yellow"
	BadgeRed    Badge = "red"
	BadgeGrey   Badge = "grey"
)

// Badge collapses out-of-stock and insufficient into red.
func (s StockStatus) Badge() Badge {
	switch s {
	case StatusOK:
		return BadgeGreen
	case StatusLow:
		return BadgeYellow
	case StatusOutOfStock, StatusInsufficient:
		return BadgeRed
	default:
		return BadgeGrey
	}
}

// StatusInfo is a classified stock level with a displayable message.
type StatusInfo struct {
	Status  StockStatus
	Message string
}
