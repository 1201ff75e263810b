package models

import "github.com/shopspring/decimal"

// Budget is the amount budgeted for one category within one half-month
// period. At most one row exists per (period, category) pair.
type Budget struct {
	Base
	PeriodID       string          `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_period_category" json:"period_id"`
	CategoryID     string          `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_period_category" json:"category_id"`
	BudgetedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"budgeted_amount"`

	// Relationships
	Period   Period   `gorm:"foreignKey:PeriodID" json:"-"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
