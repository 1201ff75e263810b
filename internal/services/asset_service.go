package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
)

// assetService handles asset snapshots and net-worth aggregation.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// ListAssetAccounts returns the active accounts that hold assets.
func (s *assetService) ListAssetAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.Where("type IN ? AND is_active = ?",
		[]models.AccountType{models.AccountTypeChecking, models.AccountTypeSavings, models.AccountTypeInvestment}, true).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return accounts, nil
}

// CreateSnapshot records an account's balance at a point in time.
func (s *assetService) CreateSnapshot(accountID string, date time.Time, balance, costBasis decimal.Decimal) (*models.AssetSnapshot, error) {
	var account models.Account
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot := &models.AssetSnapshot{
		AccountID: accountID,
		Date:      date,
		Balance:   balance,
		CostBasis: costBasis,
	}
	if err := s.db.Create(snapshot).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	snapshot.Account = account
	return snapshot, nil
}

// GetHistory returns snapshots from the last N months, oldest first,
// optionally restricted to one account.
func (s *assetService) GetHistory(accountID *string, months int) ([]models.AssetSnapshot, error) {
	since := time.Now().UTC().AddDate(0, -months, 0)

	q := s.db.Preload("Account").Where("date >= ?", since)
	if accountID != nil {
		q = q.Where("account_id = ?", *accountID)
	}

	var snapshots []models.AssetSnapshot
	if err := q.Order("date ASC").Find(&snapshots).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return snapshots, nil
}

// GetNetWorth aggregates current balances of active accounts. Credit card
// and loan balances count as liabilities.
func (s *assetService) GetNetWorth() (*NetWorth, error) {
	var accounts []models.Account
	if err := s.db.Where("is_active = ?", true).Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	assets := decimal.Zero
	liabilities := decimal.Zero
	for i := range accounts {
		if accounts[i].Type.IsLiability() {
			liabilities = liabilities.Add(accounts[i].Balance.Abs())
		} else {
			assets = assets.Add(accounts[i].Balance)
		}
	}

	return &NetWorth{
		Assets:      assets,
		Liabilities: liabilities,
		NetWorth:    assets.Sub(liabilities),
	}, nil
}
