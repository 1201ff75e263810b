package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/schedule"
)

// recurringService handles recurring templates and occurrence generation.
type recurringService struct {
	db *gorm.DB
}

// NewRecurringService creates a new RecurringServicer.
func NewRecurringService(db *gorm.DB) RecurringServicer {
	return &recurringService{db: db}
}

// ListTemplates returns all templates of the given type ordered by due date.
func (s *recurringService) ListTemplates(templateType models.TemplateType) ([]models.RecurringTemplate, error) {
	var templates []models.RecurringTemplate
	err := s.db.Preload("Category").Preload("Account").
		Where("template_type = ?", templateType).
		Order("next_due_date ASC").
		Find(&templates).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return templates, nil
}

// GetTemplateByID retrieves a template with its category and account.
func (s *recurringService) GetTemplateByID(id string) (*models.RecurringTemplate, error) {
	var template models.RecurringTemplate
	if err := s.db.Preload("Category").Preload("Account").Where("id = ?", id).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &template, nil
}

// CreateTemplate creates a recurring template of the given type.
func (s *recurringService) CreateTemplate(templateType models.TemplateType, input TemplateInput) (*models.RecurringTemplate, error) {
	var category models.Category
	if err := s.db.Where("id = ?", input.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var account models.Account
	if err := s.db.Where("id = ?", input.AccountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	template := &models.RecurringTemplate{
		Name:         input.Name,
		Amount:       input.Amount,
		Frequency:    input.Frequency,
		NextDueDate:  input.NextDueDate,
		CategoryID:   input.CategoryID,
		AccountID:    input.AccountID,
		TemplateType: templateType,
		IsAutopay:    input.IsAutopay,
		IsActive:     true,
		Notes:        input.Notes,
	}
	if err := s.db.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTemplateByID(template.ID)
}

// UpdateTemplate applies a partial update to a template.
func (s *recurringService) UpdateTemplate(id string, input TemplateUpdate) (*models.RecurringTemplate, error) {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Frequency != nil {
		updates["frequency"] = *input.Frequency
	}
	if input.NextDueDate != nil {
		updates["next_due_date"] = *input.NextDueDate
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.AccountID != nil {
		updates["account_id"] = *input.AccountID
	}
	if input.IsAutopay != nil {
		updates["is_autopay"] = *input.IsAutopay
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(template).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTemplateByID(id)
}

// DeactivateTemplate retires a template without deleting it, so that
// transactions it generated keep their back-reference.
func (s *recurringService) DeactivateTemplate(id string) error {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Model(template).Update("is_active", false).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GenerateOccurrence turns a due template into a concrete ledger
// transaction dated on the template's current due date, and advances the
// due date by one interval. Both writes commit as a single unit; on
// failure nothing persists and the whole call may be retried.
//
// Racing calls against the same template are not deduplicated: each commits
// its own transaction and advance. Callers needing exactly-once semantics
// must serialize above this layer.
func (s *recurringService) GenerateOccurrence(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}

	amount, err := occurrenceAmount(template, amountOverride)
	if err != nil {
		return nil, err
	}
	nextDue := schedule.NextDueDate(template.NextDueDate, template.Frequency)

	transaction := &models.Transaction{
		Description:         template.Name,
		Merchant:            template.Name,
		Amount:              amount,
		Date:                template.NextDueDate,
		AccountID:           template.AccountID,
		CategoryID:          template.CategoryID,
		RecurringTemplateID: &template.ID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return tx.Model(&models.RecurringTemplate{}).
			Where("id = ?", template.ID).
			Update("next_due_date", nextDue).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrOccurrenceFailed, err)
	}

	if err := s.db.Preload("Account").Preload("Category").Where("id = ?", transaction.ID).First(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// occurrenceAmount resolves the signed amount of a generated transaction.
// The override or stored amount contributes magnitude only; the sign comes
// from the template type: bills against an expense category pay out
// (negative), income and investment contributions always come in positive.
func occurrenceAmount(template *models.RecurringTemplate, override *decimal.Decimal) (decimal.Decimal, error) {
	raw := template.Amount
	if override != nil {
		raw = *override
	}
	amount := raw.Abs()

	switch template.TemplateType {
	case models.TemplateTypeBill:
		if template.Category.Type == models.CategoryTypeExpense {
			amount = amount.Neg()
		}
	case models.TemplateTypeIncome, models.TemplateTypeInvestment:
		// always positive
	default:
		return decimal.Zero, apperrors.ErrInvalidTemplateType
	}
	return amount, nil
}

// MarkPaid records a bill payment.
func (s *recurringService) MarkPaid(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return s.GenerateOccurrence(id, amountOverride)
}

// MarkReceived records an income deposit.
func (s *recurringService) MarkReceived(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return s.GenerateOccurrence(id, amountOverride)
}

// MarkContributed records an investment contribution.
func (s *recurringService) MarkContributed(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return s.GenerateOccurrence(id, amountOverride)
}

// ListGeneratedTransactions returns transactions generated from templates
// of the given type with dates in [from, to], newest first.
func (s *recurringService) ListGeneratedTransactions(templateType models.TemplateType, from, to time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Preload("Account").Preload("Category").Preload("RecurringTemplate").
		Joins("JOIN recurring_templates ON recurring_templates.id = transactions.recurring_template_id").
		Where("recurring_templates.template_type = ?", templateType).
		Where("transactions.date BETWEEN ? AND ?", from, to).
		Order("transactions.date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}
