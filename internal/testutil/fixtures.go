package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fortnight/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestAccount creates an active checking account with the given balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, balance decimal.Decimal) *models.Account {
	t.Helper()
	return CreateTestAccountOfType(t, db, models.AccountTypeChecking, balance)
}

// CreateTestAccountOfType creates an active account of the given type.
func CreateTestAccountOfType(t *testing.T, db *gorm.DB, accountType models.AccountType, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		Name:        fmt.Sprintf("Test Account %d", nextID()),
		Type:        accountType,
		Institution: "Test Bank",
		Balance:     balance,
		IsTaxable:   true,
		IsActive:    true,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestCategory creates a category of the given type.
func CreateTestCategory(t *testing.T, db *gorm.DB, categoryType models.CategoryType) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:  fmt.Sprintf("Test Category %d", nextID()),
		Type:  categoryType,
		Color: "#8884d8",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransferCategory creates the special transfer category whose
// transactions are excluded from income and expense totals.
func CreateTestTransferCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:       fmt.Sprintf("Transfer %d", nextID()),
		Type:       models.CategoryTypeExpense,
		Color:      "#6b7280",
		IsTransfer: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test transfer category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction with the given signed amount
// on the given date.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID, categoryID string, amount decimal.Decimal, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Merchant:    "Test Merchant",
		Amount:      amount,
		Date:        date,
		AccountID:   accountID,
		CategoryID:  categoryID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestTemplate creates an active recurring template of the given type.
func CreateTestTemplate(t *testing.T, db *gorm.DB, templateType models.TemplateType, accountID, categoryID string, amount decimal.Decimal, nextDue time.Time) *models.RecurringTemplate {
	t.Helper()

	template := &models.RecurringTemplate{
		Name:         fmt.Sprintf("Test Template %d", nextID()),
		Amount:       amount,
		Frequency:    models.FrequencyMonthly,
		NextDueDate:  nextDue,
		CategoryID:   categoryID,
		AccountID:    accountID,
		TemplateType: templateType,
		IsActive:     true,
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test template: %v", err)
	}
	return template
}

// CreateTestPeriod creates a period row for the given half-month key.
func CreateTestPeriod(t *testing.T, db *gorm.DB, year, month, half int) *models.Period {
	t.Helper()

	period := &models.Period{
		Year:              year,
		Month:             month,
		Half:              half,
		StartingBalance:   decimal.Zero,
		ProjectedIncome:   decimal.Zero,
		ProjectedExpenses: decimal.Zero,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}
	return period
}

// CreateTestSnapshot creates an asset snapshot for the given account.
func CreateTestSnapshot(t *testing.T, db *gorm.DB, accountID string, date time.Time, balance decimal.Decimal) *models.AssetSnapshot {
	t.Helper()

	snapshot := &models.AssetSnapshot{
		AccountID: accountID,
		Date:      date,
		Balance:   balance,
		CostBasis: decimal.Zero,
	}
	if err := db.Create(snapshot).Error; err != nil {
		t.Fatalf("failed to create test snapshot: %v", err)
	}
	return snapshot
}
