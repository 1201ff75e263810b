package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetSnapshot records an account's balance at a point in time; net-worth
// history is built from these rather than from the mutable account balance.
type AssetSnapshot struct {
	Base
	AccountID string          `gorm:"type:uuid;not null;index" json:"account_id"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"balance"`
	CostBasis decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"cost_basis"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
