package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/pagination"
)

// transactionService handles manually entered ledger transactions.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// sortColumns whitelists the sortable transaction columns.
var sortColumns = map[string]string{
	"date":        "date",
	"amount":      "amount",
	"description": "description",
	"merchant":    "merchant",
}

// ListTransactions returns a filtered, sorted page of transactions.
func (s *transactionService) ListTransactions(page pagination.PageRequest, filter TransactionFilter, sortField, sortOrder string) (*pagination.PageResponse[models.Transaction], error) {
	page.DefaultsWithSize(50)

	column, ok := sortColumns[sortField]
	if !ok {
		column = "date"
	}
	order := "DESC"
	if sortOrder == "asc" {
		order = "ASC"
	}

	base := s.db.Model(&models.Transaction{})
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	err := base.Preload("Account").Preload("Category").
		Scopes(pagination.Paginate(page)).
		Order(column + " " + order).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	return q
}

// GetTransactionByID retrieves a transaction with its account and category.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Account").Preload("Category").Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// CreateTransaction records a manually entered transaction. The template
// back-reference stays null; only occurrence generation sets it.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
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

	transaction := &models.Transaction{
		Description: input.Description,
		Merchant:    input.Merchant,
		Amount:      input.Amount,
		Date:        input.Date,
		AccountID:   input.AccountID,
		CategoryID:  input.CategoryID,
		Notes:       input.Notes,
	}
	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTransactionByID(transaction.ID)
}

// UpdateTransaction applies a partial update.
func (s *transactionService) UpdateTransaction(id string, input TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Merchant != nil {
		updates["merchant"] = *input.Merchant
	}
	if input.Amount != nil {
		updates["amount"] = *input.Amount
	}
	if input.Date != nil {
		updates["date"] = *input.Date
	}
	if input.AccountID != nil {
		updates["account_id"] = *input.AccountID
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetTransactionByID(id)
}

// DeleteTransaction removes a transaction. Generated occurrences may be
// deleted like any other; the template's schedule is not rewound.
func (s *transactionService) DeleteTransaction(id string) error {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Recategorize moves a transaction to another category.
func (s *transactionService) Recategorize(id, categoryID string) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(id)
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(transaction).Update("category_id", categoryID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetTransactionByID(id)
}
