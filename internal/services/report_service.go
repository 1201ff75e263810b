package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
)

// reportService handles read-only reporting aggregations. Grouping happens
// in memory over the fetched rows; result sets here are small (a year of
// personal transactions), so no SQL aggregation is needed.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

const (
	monthKeyFormat   = "2006-01"
	monthLabelFormat = "Jan 2006"
)

func startOfMonthsAgo(months int) time.Time {
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -(months - 1), 0)
}

// MonthlySummary returns per-month income, expenses, net, and savings rate
// for the last N months (transfer categories excluded).
func (s *reportService) MonthlySummary(months int) ([]MonthlySummary, error) {
	since := startOfMonthsAgo(months)

	var transactions []models.Transaction
	err := s.db.Preload("Category").
		Where("date >= ?", since).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type totals struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	byMonth := make(map[string]*totals)
	for i := range transactions {
		if transactions[i].Category.IsTransfer {
			continue
		}
		key := transactions[i].Date.Format(monthKeyFormat)
		entry, ok := byMonth[key]
		if !ok {
			entry = &totals{income: decimal.Zero, expenses: decimal.Zero}
			byMonth[key] = entry
		}
		amount := transactions[i].Amount
		if amount.IsPositive() {
			entry.income = entry.income.Add(amount)
		} else {
			entry.expenses = entry.expenses.Add(amount.Abs())
		}
	}

	summaries := make([]MonthlySummary, 0, len(byMonth))
	for key, entry := range byMonth {
		month, _ := time.Parse(monthKeyFormat, key)
		net := entry.income.Sub(entry.expenses)
		var savingsRate float64
		if entry.income.IsPositive() {
			savingsRate, _ = net.Div(entry.income).Mul(decimal.NewFromInt(100)).Float64()
		}
		summaries = append(summaries, MonthlySummary{
			Month:       key,
			Label:       month.Format(monthLabelFormat),
			Income:      entry.income,
			Expenses:    entry.expenses,
			Net:         net,
			SavingsRate: savingsRate,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Month < summaries[j].Month })
	return summaries, nil
}

// CategorySpending returns expense totals per category with each
// category's share of overall spending, largest first.
func (s *reportService) CategorySpending(from, to *time.Time) ([]CategorySpending, error) {
	transactions, err := s.expenseTransactions(from, to)
	if err != nil {
		return nil, err
	}

	type entry struct {
		amount decimal.Decimal
		count  int
		color  string
	}
	byCategory := make(map[string]*entry)
	for i := range transactions {
		key := transactions[i].Category.Name
		e, ok := byCategory[key]
		if !ok {
			e = &entry{amount: decimal.Zero, color: transactions[i].Category.Color}
			byCategory[key] = e
		}
		e.amount = e.amount.Add(transactions[i].Amount.Abs())
		e.count++
	}

	total := decimal.Zero
	for _, e := range byCategory {
		total = total.Add(e.amount)
	}

	results := make([]CategorySpending, 0, len(byCategory))
	for name, e := range byCategory {
		var percentage float64
		if total.IsPositive() {
			percentage, _ = e.amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		results = append(results, CategorySpending{
			Category:     name,
			Amount:       e.amount,
			Percentage:   percentage,
			Color:        e.color,
			Transactions: e.count,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Amount.GreaterThan(results[j].Amount) })
	return results, nil
}

// TopMerchants returns the merchants with the highest expense totals.
func (s *reportService) TopMerchants(limit int, from, to *time.Time) ([]MerchantSpending, error) {
	transactions, err := s.expenseTransactions(from, to)
	if err != nil {
		return nil, err
	}

	type entry struct {
		amount   decimal.Decimal
		count    int
		category string
	}
	byMerchant := make(map[string]*entry)
	for i := range transactions {
		key := transactions[i].Merchant
		e, ok := byMerchant[key]
		if !ok {
			e = &entry{amount: decimal.Zero, category: transactions[i].Category.Name}
			byMerchant[key] = e
		}
		e.amount = e.amount.Add(transactions[i].Amount.Abs())
		e.count++
	}

	results := make([]MerchantSpending, 0, len(byMerchant))
	for name, e := range byMerchant {
		results = append(results, MerchantSpending{
			Name:         name,
			Amount:       e.amount,
			Transactions: e.count,
			Category:     e.category,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Amount.GreaterThan(results[j].Amount) })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *reportService) expenseTransactions(from, to *time.Time) ([]models.Transaction, error) {
	q := s.db.Preload("Category").Where("amount < ?", decimal.Zero)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// NetWorthHistory builds per-month net worth from asset snapshots: within
// each month the latest snapshot per account wins, and credit card or loan
// balances count as liabilities.
func (s *reportService) NetWorthHistory(months int) ([]NetWorthPoint, error) {
	since := startOfMonthsAgo(months)

	var snapshots []models.AssetSnapshot
	err := s.db.Preload("Account").
		Where("date >= ?", since).
		Order("date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type balance struct {
		amount    decimal.Decimal
		liability bool
	}
	byMonth := make(map[string]map[string]balance)
	for i := range snapshots {
		key := snapshots[i].Date.Format(monthKeyFormat)
		if byMonth[key] == nil {
			byMonth[key] = make(map[string]balance)
		}
		// Snapshots are ordered by date, so later ones overwrite earlier.
		byMonth[key][snapshots[i].AccountID] = balance{
			amount:    snapshots[i].Balance,
			liability: snapshots[i].Account.Type.IsLiability(),
		}
	}

	points := make([]NetWorthPoint, 0, len(byMonth))
	for key, accounts := range byMonth {
		month, _ := time.Parse(monthKeyFormat, key)
		assets := decimal.Zero
		liabilities := decimal.Zero
		for _, b := range accounts {
			if b.liability {
				liabilities = liabilities.Add(b.amount.Abs())
			} else {
				assets = assets.Add(b.amount)
			}
		}
		points = append(points, NetWorthPoint{
			Month:       key,
			Label:       month.Format(monthLabelFormat),
			Assets:      assets,
			Liabilities: liabilities,
			NetWorth:    assets.Sub(liabilities),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points, nil
}
