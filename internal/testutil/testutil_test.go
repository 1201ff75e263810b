package testutil_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"accounts", "categories", "transactions", "recurring_templates", "periods", "budgets", "asset_snapshots"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	account := testutil.CreateTestAccount(t, db, decimal.NewFromInt(5000))
	if account.ID == "" {
		t.Fatal("account should have a non-empty ID")
	}
	if !account.Balance.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected balance 5000, got %s", account.Balance)
	}

	category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	transfer := testutil.CreateTestTransferCategory(t, db)
	if !transfer.IsTransfer {
		t.Error("expected transfer category to have IsTransfer set")
	}

	tx := testutil.CreateTestTransaction(t, db, account.ID, category.ID, decimal.NewFromInt(-42), time.Now().UTC())
	if !tx.Amount.Equal(decimal.NewFromInt(-42)) {
		t.Errorf("expected amount -42, got %s", tx.Amount)
	}

	template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, category.ID, decimal.NewFromInt(100), time.Now().UTC())
	if !template.IsActive {
		t.Error("expected template to be active")
	}

	period := testutil.CreateTestPeriod(t, db, 2026, 3, 1)
	if period.Half != 1 {
		t.Errorf("expected half 1, got %d", period.Half)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAccountNotFound, "custom message")
	testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
