package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
)

const (
	recentTransactionLimit = 10
	upcomingBillWindowDays = 14
)

// dashboardService assembles the landing page aggregate from the period
// and asset services plus a few direct queries.
type dashboardService struct {
	db      *gorm.DB
	periods PeriodServicer
	assets  AssetServicer
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, periods PeriodServicer, assets AssetServicer) DashboardServicer {
	return &dashboardService{db: db, periods: periods, assets: assets}
}

// GetDashboard returns current period metrics, active accounts, recent
// transactions, bills due within the next two weeks, net worth, and the
// current period's spending breakdown by category.
func (s *dashboardService) GetDashboard() (*Dashboard, error) {
	period, err := s.periods.GetCurrentPeriod()
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	err = s.db.Where("is_active = ?", true).
		Order("type ASC, name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	totalBalance := decimal.Zero
	for i := range accounts {
		if accounts[i].Type.IsLiability() {
			totalBalance = totalBalance.Sub(accounts[i].Balance.Abs())
		} else {
			totalBalance = totalBalance.Add(accounts[i].Balance)
		}
	}

	var recent []models.Transaction
	err = s.db.Preload("Category").Preload("Account").
		Order("date DESC").
		Limit(recentTransactionLimit).
		Find(&recent).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, upcomingBillWindowDays)
	var upcoming []models.RecurringTemplate
	err = s.db.Preload("Category").Preload("Account").
		Where("template_type = ? AND is_active = ? AND next_due_date <= ?", models.TemplateTypeBill, true, cutoff).
		Order("next_due_date ASC").
		Find(&upcoming).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	netWorth, err := s.assets.GetNetWorth()
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		PeriodMetrics: DashboardMetrics{
			TotalBalance: totalBalance,
			Income:       period.ActualIncome,
			Expenses:     period.ActualExpenses,
			NetCashFlow:  period.ActualIncome.Sub(period.ActualExpenses),
		},
		Accounts:           accounts,
		RecentTransactions: recent,
		UpcomingBills:      upcoming,
		NetWorth:           netWorth,
		SpendingByCategory: spendingSlices(period.Transactions),
	}, nil
}

// spendingSlices groups a period's expense transactions by category name,
// largest first.
func spendingSlices(transactions []models.Transaction) []CategorySlice {
	type entry struct {
		amount decimal.Decimal
		color  string
	}
	byCategory := make(map[string]*entry)
	for i := range transactions {
		if !transactions[i].Amount.IsNegative() || transactions[i].Category.IsTransfer {
			continue
		}
		key := transactions[i].Category.Name
		e, ok := byCategory[key]
		if !ok {
			e = &entry{amount: decimal.Zero, color: transactions[i].Category.Color}
			byCategory[key] = e
		}
		e.amount = e.amount.Add(transactions[i].Amount.Abs())
	}

	slices := make([]CategorySlice, 0, len(byCategory))
	for name, e := range byCategory {
		slices = append(slices, CategorySlice{Name: name, Amount: e.amount, Color: e.color})
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Amount.GreaterThan(slices[j].Amount) })
	return slices
}
