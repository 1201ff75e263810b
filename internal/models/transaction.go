package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one ledger entry. Amount is signed: positive for
// money in, negative for money out. RecurringTemplateID is set when the
// transaction was generated from a recurring template and null for
// manually entered transactions.
type Transaction struct {
	Base
	Description         string          `gorm:"not null" json:"description"`
	Merchant            string          `gorm:"not null" json:"merchant"`
	Amount              decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date                time.Time       `gorm:"not null;index" json:"date"`
	AccountID           string          `gorm:"type:uuid;not null" json:"account_id"`
	CategoryID          string          `gorm:"type:uuid;not null" json:"category_id"`
	RecurringTemplateID *string         `gorm:"type:uuid" json:"recurring_template_id,omitempty"`
	Notes               string          `json:"notes,omitempty"`

	// Relationships
	Account           Account            `gorm:"foreignKey:AccountID" json:"account,omitempty"`
	Category          Category           `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	RecurringTemplate *RecurringTemplate `gorm:"foreignKey:RecurringTemplateID" json:"recurring_template,omitempty"`
}
