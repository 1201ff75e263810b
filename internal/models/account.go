package models

import "github.com/shopspring/decimal"

// AccountType represents the type of account
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
)

// IsLiability reports whether balances on this account type count against
// net worth rather than toward it.
func (t AccountType) IsLiability() bool {
	return t == AccountTypeCreditCard || t == AccountTypeLoan
}

// Account represents a financial account (checking, savings, card, loan, brokerage).
type Account struct {
	Base
	Name        string          `gorm:"not null" json:"name"`
	Type        AccountType     `gorm:"not null" json:"type"`
	Institution string          `json:"institution"`
	LastFour    string          `gorm:"size:4" json:"last_four"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	IsTaxable   bool            `gorm:"default:true" json:"is_taxable"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`

	// Relationships
	Transactions []Transaction   `gorm:"foreignKey:AccountID" json:"transactions,omitempty"`
	Snapshots    []AssetSnapshot `gorm:"foreignKey:AccountID" json:"snapshots,omitempty"`
}
