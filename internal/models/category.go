package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category.
//
// IsTransfer marks the category whose transactions are internal money
// movement; the period reconciler keeps them out of income/expense totals.
type Category struct {
	Base
	Name       string       `gorm:"not null" json:"name"`
	Type       CategoryType `gorm:"not null" json:"type"`
	Color      string       `gorm:"not null" json:"color"`
	Icon       string       `json:"icon"`
	SortOrder  int          `gorm:"default:0" json:"sort_order"`
	IsDefault  bool         `gorm:"default:false" json:"is_default"`
	IsTransfer bool         `gorm:"default:false" json:"is_transfer"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
	Budgets      []Budget      `gorm:"foreignKey:CategoryID" json:"budgets,omitempty"`
}
