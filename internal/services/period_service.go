package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/pagination"
	"fortnight/internal/schedule"
)

// periodService handles half-month periods, their derived cash-flow
// actuals, and per-period category budgets.
type periodService struct {
	db *gorm.DB
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(db *gorm.DB) PeriodServicer {
	return &periodService{db: db}
}

// GetOrCreatePeriod returns the period row for (year, month, half),
// materializing it with zeroed defaults on first access. When two callers
// race on an unseen key, the unique constraint rejects the second insert;
// the loser re-reads the winner's row instead of failing.
func (s *periodService) GetOrCreatePeriod(year, month, half int) (*models.Period, error) {
	if half != 1 && half != 2 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "half must be 1 or 2")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	period, err := s.findPeriod(year, month, half)
	if err == nil {
		return period, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	fresh := &models.Period{
		Year:              year,
		Month:             month,
		Half:              half,
		StartingBalance:   decimal.Zero,
		ProjectedIncome:   decimal.Zero,
		ProjectedExpenses: decimal.Zero,
	}
	if createErr := s.db.Create(fresh).Error; createErr != nil {
		// Lost a first-access race: the row exists now, take the winner's.
		if period, err := s.findPeriod(year, month, half); err == nil {
			return period, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
	}
	return fresh, nil
}

func (s *periodService) findPeriod(year, month, half int) (*models.Period, error) {
	var period models.Period
	err := s.db.Preload("Budgets.Category").
		Where("year = ? AND month = ? AND half = ?", year, month, half).
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// ComputeActuals derives income, expense, and transfer totals from the
// transactions dated inside the period's range. Transfer-category amounts
// keep their sign; other positive amounts are income, the rest expenses
// (as magnitudes). Nothing is cached: every call scans fresh.
func (s *periodService) ComputeActuals(year, month, half int) (*PeriodActuals, error) {
	start, end := schedule.PeriodRange(year, month, half)

	var transactions []models.Transaction
	err := s.db.Preload("Category").Preload("Account").
		Where("date BETWEEN ? AND ?", start, end).
		Order("date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	actuals := &PeriodActuals{
		ActualIncome:    decimal.Zero,
		ActualExpenses:  decimal.Zero,
		ActualTransfers: decimal.Zero,
		Transactions:    transactions,
	}
	for i := range transactions {
		amount := transactions[i].Amount
		switch {
		case transactions[i].Category.IsTransfer:
			actuals.ActualTransfers = actuals.ActualTransfers.Add(amount)
		case amount.IsPositive():
			actuals.ActualIncome = actuals.ActualIncome.Add(amount)
		default:
			actuals.ActualExpenses = actuals.ActualExpenses.Add(amount.Abs())
		}
	}
	return actuals, nil
}

// GetPeriodWithActuals returns the period joined with freshly derived
// actuals and both balance projections:
//
//	endingBalance          = starting + income - expenses + transfers
//	projectedEndingBalance = starting + projectedIncome - projectedExpenses
func (s *periodService) GetPeriodWithActuals(year, month, half int) (*PeriodWithActuals, error) {
	period, err := s.GetOrCreatePeriod(year, month, half)
	if err != nil {
		return nil, err
	}
	actuals, err := s.ComputeActuals(year, month, half)
	if err != nil {
		return nil, err
	}

	ending := period.StartingBalance.
		Add(actuals.ActualIncome).
		Sub(actuals.ActualExpenses).
		Add(actuals.ActualTransfers)
	projectedEnding := period.StartingBalance.
		Add(period.ProjectedIncome).
		Sub(period.ProjectedExpenses)

	return &PeriodWithActuals{
		Period:                 *period,
		PeriodActuals:          *actuals,
		EndingBalance:          ending,
		ProjectedEndingBalance: projectedEnding,
	}, nil
}

// GetCurrentPeriod resolves today's half-month window and reconciles it.
func (s *periodService) GetCurrentPeriod() (*PeriodWithActuals, error) {
	year, month, half := schedule.ResolveHalf(time.Now().UTC())
	return s.GetPeriodWithActuals(year, month, half)
}

// ListPeriods returns a page of periods, newest first.
func (s *periodService) ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.Period], error) {
	page.DefaultsWithSize(12)

	base := s.db.Model(&models.Period{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var periods []models.Period
	err := base.Preload("Budgets.Category").
		Scopes(pagination.Paginate(page)).
		Order("year DESC, month DESC, half DESC").
		Find(&periods).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(periods, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// UpdatePeriod merges the editable fields into a period. Derived actuals
// are never stored, so there is nothing else to touch.
func (s *periodService) UpdatePeriod(id string, update PeriodUpdate) (*models.Period, error) {
	var period models.Period
	if err := s.db.Where("id = ?", id).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if update.StartingBalance != nil {
		updates["starting_balance"] = *update.StartingBalance
	}
	if update.ProjectedIncome != nil {
		updates["projected_income"] = *update.ProjectedIncome
	}
	if update.ProjectedExpenses != nil {
		updates["projected_expenses"] = *update.ProjectedExpenses
	}
	if update.Notes != nil {
		updates["notes"] = *update.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(&period).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	refreshed, err := s.findPeriod(period.Year, period.Month, period.Half)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return refreshed, nil
}

// SetBudget upserts the budgeted amount for a category within a period,
// keyed on the (period, category) unique constraint. Repeated calls with
// the same arguments leave exactly one row.
func (s *periodService) SetBudget(periodID, categoryID string, budgetedAmount decimal.Decimal) (*models.Budget, error) {
	var period models.Period
	if err := s.db.Where("id = ?", periodID).First(&period).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget := &models.Budget{
		PeriodID:       periodID,
		CategoryID:     categoryID,
		BudgetedAmount: budgetedAmount,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period_id"}, {Name: "category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"budgeted_amount": budgetedAmount}),
	}).Create(budget).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var saved models.Budget
	err = s.db.Preload("Category").
		Where("period_id = ? AND category_id = ?", periodID, categoryID).
		First(&saved).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &saved, nil
}
