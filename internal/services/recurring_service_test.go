package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fortnight/internal/models"
	"fortnight/internal/testutil"
)

func TestCreateTemplate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		template, err := svc.CreateTemplate(models.TemplateTypeBill, TemplateInput{
			Name:        "Rent",
			Amount:      decimal.NewFromFloat(1791.67),
			Frequency:   models.FrequencyMonthly,
			NextDueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:  cat.ID,
			AccountID:   account.ID,
		})
		testutil.AssertNoError(t, err)

		if template.ID == "" {
			t.Fatal("expected non-empty template ID")
		}
		if template.TemplateType != models.TemplateTypeBill {
			t.Errorf("expected template type bill, got %s", template.TemplateType)
		}
		if !template.IsActive {
			t.Error("expected template to be active")
		}
		if template.Category.ID != cat.ID {
			t.Error("expected category to be preloaded")
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)

		_, err := svc.CreateTemplate(models.TemplateTypeBill, TemplateInput{
			Name:        "Bad",
			Amount:      decimal.NewFromInt(10),
			Frequency:   models.FrequencyMonthly,
			NextDueDate: time.Now().UTC(),
			CategoryID:  "00000000-0000-0000-0000-000000000000",
			AccountID:   account.ID,
		})
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("invalid_account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := svc.CreateTemplate(models.TemplateTypeBill, TemplateInput{
			Name:        "Bad",
			Amount:      decimal.NewFromInt(10),
			Frequency:   models.FrequencyMonthly,
			NextDueDate: time.Now().UTC(),
			CategoryID:  cat.ID,
			AccountID:   "00000000-0000-0000-0000-000000000000",
		})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestListTemplates(t *testing.T) {
	t.Run("filters_by_type_in_due_date_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		expense := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		later := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, expense.ID,
			decimal.NewFromInt(50), time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
		earlier := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, expense.ID,
			decimal.NewFromInt(100), time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestTemplate(t, db, models.TemplateTypeIncome, account.ID, income.ID,
			decimal.NewFromInt(2000), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		bills, err := svc.ListTemplates(models.TemplateTypeBill)
		testutil.AssertNoError(t, err)

		if len(bills) != 2 {
			t.Fatalf("expected 2 bills, got %d", len(bills))
		}
		if bills[0].ID != earlier.ID || bills[1].ID != later.ID {
			t.Error("expected bills ordered by next due date ascending")
		}
	})
}

func TestUpdateTemplate(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, cat.ID,
			decimal.NewFromInt(90), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		newAmount := decimal.NewFromFloat(95.50)
		updated, err := svc.UpdateTemplate(template.ID, TemplateUpdate{Amount: &newAmount})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, newAmount, updated.Amount)
		if updated.Name != template.Name {
			t.Error("expected untouched fields to survive the update")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		name := "Nope"
		_, err := svc.UpdateTemplate("00000000-0000-0000-0000-000000000000", TemplateUpdate{Name: &name})
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})
}

func TestDeactivateTemplate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRecurringService(db)
	account := testutil.CreateTestAccount(t, db, decimal.Zero)
	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, cat.ID,
		decimal.NewFromInt(15), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	testutil.AssertNoError(t, svc.DeactivateTemplate(template.ID))

	reloaded, err := svc.GetTemplateByID(template.ID)
	testutil.AssertNoError(t, err)
	if reloaded.IsActive {
		t.Error("expected template to be inactive after deactivation")
	}
}

func TestGenerateOccurrence(t *testing.T) {
	t.Run("bill_pays_out_negative", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, cat.ID,
			decimal.NewFromFloat(1791.67), due)

		tx, err := svc.GenerateOccurrence(template.ID, nil)
		testutil.AssertNoError(t, err)

		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(-1791.67), tx.Amount)
		if !tx.Date.Equal(due) {
			t.Errorf("expected transaction dated on the due date, got %s", tx.Date)
		}
		if tx.RecurringTemplateID == nil || *tx.RecurringTemplateID != template.ID {
			t.Error("expected transaction to reference its template")
		}

		reloaded, err := svc.GetTemplateByID(template.ID)
		testutil.AssertNoError(t, err)
		if !reloaded.NextDueDate.Equal(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected due date advanced to 2026-04-01, got %s", reloaded.NextDueDate)
		}
	})

	t.Run("income_comes_in_positive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeIncome, account.ID, cat.ID,
			decimal.NewFromFloat(2560.37), time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

		tx, err := svc.MarkReceived(template.ID, nil)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(2560.37), tx.Amount)
	})

	t.Run("contribution_comes_in_positive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccountOfType(t, db, models.AccountTypeInvestment, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeInvestment, account.ID, cat.ID,
			decimal.NewFromInt(500), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		tx, err := svc.MarkContributed(template.ID, nil)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromInt(500), tx.Amount)
	})

	t.Run("override_magnitude_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, cat.ID,
			decimal.NewFromInt(120), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		// Callers may pass the override already signed; only its magnitude counts.
		override := decimal.NewFromFloat(-133.25)
		tx, err := svc.MarkPaid(template.ID, &override)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(-133.25), tx.Amount)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)

		_, err := svc.GenerateOccurrence("00000000-0000-0000-0000-000000000000", nil)
		testutil.AssertAppError(t, err, "TEMPLATE_NOT_FOUND")
	})

	t.Run("advance_failure_leaves_no_orphan", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecurringService(db)
		account := testutil.CreateTestAccount(t, db, decimal.Zero)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		template := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, cat.ID,
			decimal.NewFromInt(60), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

		// Force the due-date advance to fail so that the surrounding
		// transaction must roll back the already-inserted ledger row.
		err := db.Exec(`CREATE TRIGGER block_template_updates BEFORE UPDATE ON recurring_templates
			BEGIN SELECT RAISE(ABORT, 'update blocked'); END;`).Error
		testutil.AssertNoError(t, err)

		_, err = svc.GenerateOccurrence(template.ID, nil)
		testutil.AssertAppError(t, err, "OCCURRENCE_FAILED")

		var count int64
		testutil.AssertNoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
		if count != 0 {
			t.Errorf("expected no transactions after rollback, got %d", count)
		}

		reloaded, err := svc.GetTemplateByID(template.ID)
		testutil.AssertNoError(t, err)
		if !reloaded.NextDueDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected due date unchanged after rollback, got %s", reloaded.NextDueDate)
		}
	})
}

func TestListGeneratedTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewRecurringService(db)
	account := testutil.CreateTestAccount(t, db, decimal.Zero)
	expense := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

	bill := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, account.ID, expense.ID,
		decimal.NewFromInt(80), time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	paycheck := testutil.CreateTestTemplate(t, db, models.TemplateTypeIncome, account.ID, income.ID,
		decimal.NewFromInt(2000), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	// Two bill payments a month apart, plus one paycheck that must not
	// appear in the bill listing. A manual transaction stays out entirely.
	_, err := svc.MarkPaid(bill.ID, nil)
	testutil.AssertNoError(t, err)
	_, err = svc.MarkPaid(bill.ID, nil)
	testutil.AssertNoError(t, err)
	_, err = svc.MarkReceived(paycheck.ID, nil)
	testutil.AssertNoError(t, err)
	testutil.CreateTestTransaction(t, db, account.ID, expense.ID, decimal.NewFromInt(-5),
		time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 23, 59, 59, 0, time.UTC)
	payments, err := svc.ListGeneratedTransactions(models.TemplateTypeBill, from, to)
	testutil.AssertNoError(t, err)

	if len(payments) != 2 {
		t.Fatalf("expected 2 bill payments, got %d", len(payments))
	}
	if !payments[0].Date.After(payments[1].Date) {
		t.Error("expected payments ordered newest first")
	}

	// Narrowing the window to March drops the April payment.
	march, err := svc.ListGeneratedTransactions(models.TemplateTypeBill,
		from, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC))
	testutil.AssertNoError(t, err)
	if len(march) != 1 {
		t.Fatalf("expected 1 March payment, got %d", len(march))
	}
}
