package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// ListAccounts returns all accounts grouped by type, then name.
func (s *accountService) ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.db.Order("type ASC, name ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// GetAccountByID retrieves an account by ID.
func (s *accountService) GetAccountByID(id string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

// CreateAccount creates a new account.
func (s *accountService) CreateAccount(input AccountInput) (*models.Account, error) {
	account := &models.Account{
		Name:        input.Name,
		Type:        input.Type,
		Institution: input.Institution,
		LastFour:    input.LastFour,
		Balance:     input.Balance,
		IsTaxable:   true,
		IsActive:    true,
	}
	if input.IsTaxable != nil {
		account.IsTaxable = *input.IsTaxable
	}
	if err := s.db.Create(account).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return account, nil
}

// UpdateAccount applies a partial update to an account.
func (s *accountService) UpdateAccount(id string, input AccountUpdate) (*models.Account, error) {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Type != nil {
		updates["type"] = *input.Type
	}
	if input.Institution != nil {
		updates["institution"] = *input.Institution
	}
	if input.LastFour != nil {
		updates["last_four"] = *input.LastFour
	}
	if input.Balance != nil {
		updates["balance"] = *input.Balance
	}
	if input.IsTaxable != nil {
		updates["is_taxable"] = *input.IsTaxable
	}

	if len(updates) > 0 {
		if err := s.db.Model(account).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetAccountByID(id)
}

// DeleteAccount removes an account.
func (s *accountService) DeleteAccount(id string) error {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(account).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ToggleActive flips an account's active flag.
func (s *accountService) ToggleActive(id string) (*models.Account, error) {
	account, err := s.GetAccountByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(account).Update("is_active", !account.IsActive).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.GetAccountByID(id)
}
