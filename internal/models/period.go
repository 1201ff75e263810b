package models

import "github.com/shopspring/decimal"

// Period is a fixed half-month accounting window: half 1 covers the 1st
// through the 15th, half 2 the 16th through the end of the month. Rows are
// materialized lazily with zeroed defaults on first access; actual cash
// flow is always derived from transactions, never stored here.
type Period struct {
	Base
	Year              int             `gorm:"not null;uniqueIndex:idx_periods_key" json:"year"`
	Month             int             `gorm:"not null;uniqueIndex:idx_periods_key" json:"month"`
	Half              int             `gorm:"not null;uniqueIndex:idx_periods_key" json:"half"`
	StartingBalance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"starting_balance"`
	ProjectedIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"projected_income"`
	ProjectedExpenses decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"projected_expenses"`
	Notes             string          `json:"notes,omitempty"`

	// Relationships
	Budgets []Budget `gorm:"foreignKey:PeriodID" json:"budgets,omitempty"`
}
