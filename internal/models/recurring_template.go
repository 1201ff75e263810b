package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring template comes due.
type Frequency string

const (
	FrequencyMonthly     Frequency = "monthly"
	FrequencySemiMonthly Frequency = "semi_monthly"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnual      Frequency = "annual"
)

// TemplateType classifies a recurring template and drives the sign of the
// transactions it generates.
type TemplateType string

const (
	TemplateTypeBill       TemplateType = "bill"
	TemplateTypeIncome     TemplateType = "income"
	TemplateTypeInvestment TemplateType = "investment"
)

// RecurringTemplate is a user-defined schedule (a bill, an income source,
// or an investment contribution) carrying a frequency and a next due date.
// Templates are deactivated rather than deleted so that transactions they
// generated keep a valid back-reference.
type RecurringTemplate struct {
	Base
	Name         string          `gorm:"not null" json:"name"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Frequency    Frequency       `gorm:"not null" json:"frequency"`
	NextDueDate  time.Time       `gorm:"not null;index" json:"next_due_date"`
	CategoryID   string          `gorm:"type:uuid;not null" json:"category_id"`
	AccountID    string          `gorm:"type:uuid;not null" json:"account_id"`
	TemplateType TemplateType    `gorm:"not null;index" json:"template_type"`
	IsAutopay    bool            `gorm:"default:false" json:"is_autopay"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	Notes        string          `json:"notes,omitempty"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Account  Account  `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}
