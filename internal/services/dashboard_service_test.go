package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fortnight/internal/models"
	"fortnight/internal/schedule"
	"fortnight/internal/testutil"
)

func TestGetDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	periods := NewPeriodService(db)
	assets := NewAssetService(db)
	svc := NewDashboardService(db, periods, assets)

	checking := testutil.CreateTestAccountOfType(t, db, models.AccountTypeChecking, decimal.NewFromInt(3000))
	_ = testutil.CreateTestAccountOfType(t, db, models.AccountTypeCreditCard, decimal.NewFromInt(-500))
	expense := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
	income := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

	// Place activity inside today's half-month window so the current
	// period picks it up.
	year, month, half := schedule.ResolveHalf(time.Now().UTC())
	start, _ := schedule.PeriodRange(year, month, half)
	inPeriod := start.Add(time.Hour)

	testutil.CreateTestTransaction(t, db, checking.ID, income.ID, decimal.NewFromInt(2000), inPeriod)
	testutil.CreateTestTransaction(t, db, checking.ID, expense.ID, decimal.NewFromInt(-750), inPeriod)

	dueSoon := testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, checking.ID, expense.ID,
		decimal.NewFromInt(60), time.Now().UTC().AddDate(0, 0, 3))
	// Due beyond the two-week window, so it must not appear.
	testutil.CreateTestTemplate(t, db, models.TemplateTypeBill, checking.ID, expense.ID,
		decimal.NewFromInt(90), time.Now().UTC().AddDate(0, 2, 0))

	dashboard, err := svc.GetDashboard()
	testutil.AssertNoError(t, err)

	testutil.AssertDecimalEqual(t, decimal.NewFromInt(2500), dashboard.PeriodMetrics.TotalBalance)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(2000), dashboard.PeriodMetrics.Income)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(750), dashboard.PeriodMetrics.Expenses)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(1250), dashboard.PeriodMetrics.NetCashFlow)

	if len(dashboard.Accounts) != 2 {
		t.Errorf("expected 2 active accounts, got %d", len(dashboard.Accounts))
	}
	if len(dashboard.RecentTransactions) != 2 {
		t.Errorf("expected 2 recent transactions, got %d", len(dashboard.RecentTransactions))
	}
	if len(dashboard.UpcomingBills) != 1 || dashboard.UpcomingBills[0].ID != dueSoon.ID {
		t.Error("expected only the bill due within two weeks")
	}
	if dashboard.NetWorth == nil {
		t.Fatal("expected net worth to be present")
	}
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(2500), dashboard.NetWorth.NetWorth)

	if len(dashboard.SpendingByCategory) != 1 {
		t.Fatalf("expected 1 spending slice, got %d", len(dashboard.SpendingByCategory))
	}
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(750), dashboard.SpendingByCategory[0].Amount)
	if dashboard.SpendingByCategory[0].Name != expense.Name {
		t.Errorf("expected slice for %s, got %s", expense.Name, dashboard.SpendingByCategory[0].Name)
	}
}

func TestGetDashboardEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewDashboardService(db, NewPeriodService(db), NewAssetService(db))

	dashboard, err := svc.GetDashboard()
	testutil.AssertNoError(t, err)

	testutil.AssertDecimalEqual(t, decimal.Zero, dashboard.PeriodMetrics.TotalBalance)
	if len(dashboard.Accounts) != 0 {
		t.Errorf("expected no accounts, got %d", len(dashboard.Accounts))
	}
	if len(dashboard.SpendingByCategory) != 0 {
		t.Errorf("expected no spending slices, got %d", len(dashboard.SpendingByCategory))
	}
}
