package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/services"
	"fortnight/internal/uuid"
)

// AssetHandler handles asset snapshot and net worth requests.
type AssetHandler struct {
	assetService services.AssetServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService services.AssetServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateSnapshotRequest represents the request payload for recording an
// asset snapshot.
type CreateSnapshotRequest struct {
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Balance   decimal.Decimal `json:"balance" binding:"required"`
	CostBasis decimal.Decimal `json:"cost_basis"`
}

// GetAssetAccounts handles listing the active asset-holding accounts.
// @Summary     List asset accounts
// @Description Get active checking, savings, and investment accounts
// @Tags        assets
// @Produce     json
// @Success     200 {object} map[string][]models.Account "Asset accounts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/accounts [get]
func (h *AssetHandler) GetAssetAccounts(c *gin.Context) {
	accounts, err := h.assetService.ListAssetAccounts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// CreateSnapshot handles recording an account balance snapshot.
// @Summary     Create a snapshot
// @Description Record an account's balance at a point in time
// @Tags        assets
// @Accept      json
// @Produce     json
// @Param       request body CreateSnapshotRequest true "Snapshot details"
// @Success     201 {object} map[string]models.AssetSnapshot "Snapshot created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/snapshots [post]
func (h *AssetHandler) CreateSnapshot(c *gin.Context) {
	var req CreateSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, _ := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	snapshot, err := h.assetService.CreateSnapshot(req.AccountID, date, req.Balance, req.CostBasis)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}

// GetHistory handles listing snapshots over a trailing window.
// @Summary     Get snapshot history
// @Description Get snapshots for the last N months, oldest first
// @Tags        assets
// @Produce     json
// @Param       months     query int    false "Months of history (default 12)"
// @Param       account_id query string false "Restrict to one account"
// @Success     200 {object} map[string][]models.AssetSnapshot "Snapshots"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/history [get]
func (h *AssetHandler) GetHistory(c *gin.Context) {
	months, err := parseMonthsQuery(c, 12)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var accountID *string
	if v := c.Query("account_id"); v != "" {
		if !uuid.IsValid(v) {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid account_id"))
			return
		}
		accountID = &v
	}

	snapshots, err := h.assetService.GetHistory(accountID, months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"snapshots": snapshots})
}

// GetNetWorth handles the current asset/liability split.
// @Summary     Get net worth
// @Description Aggregate current balances of active accounts
// @Tags        assets
// @Produce     json
// @Success     200 {object} services.NetWorth "Net worth"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assets/net-worth [get]
func (h *AssetHandler) GetNetWorth(c *gin.Context) {
	netWorth, err := h.assetService.GetNetWorth()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, netWorth)
}

// parseMonthsQuery reads an optional positive months query parameter.
func parseMonthsQuery(c *gin.Context, fallback int) (int, error) {
	v := c.Query("months")
	if v == "" {
		return fallback, nil
	}
	months, err := strconv.Atoi(v)
	if err != nil || months < 1 || months > 120 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid months, expected 1-120")
	}
	return months, nil
}
