package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/pagination"
	"fortnight/internal/services"
)

// PeriodHandler handles half-month period requests.
type PeriodHandler struct {
	periodService services.PeriodServicer
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodService services.PeriodServicer) *PeriodHandler {
	return &PeriodHandler{periodService: periodService}
}

// UpdatePeriodRequest represents the request payload for updating a period's
// editable fields.
type UpdatePeriodRequest struct {
	StartingBalance   *decimal.Decimal `json:"starting_balance"`
	ProjectedIncome   *decimal.Decimal `json:"projected_income"`
	ProjectedExpenses *decimal.Decimal `json:"projected_expenses"`
	Notes             *string          `json:"notes" binding:"omitempty,max=500"`
}

// SetBudgetRequest represents the request payload for budgeting a category
// within a period.
type SetBudgetRequest struct {
	CategoryID     string          `json:"category_id" binding:"required,uuid"`
	BudgetedAmount decimal.Decimal `json:"budgeted_amount" binding:"required"`
}

// parsePeriodKey reads the year/month/half path parameters.
func parsePeriodKey(c *gin.Context) (year, month, half int, err error) {
	year, err = strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid year")
	}
	month, err = strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid month")
	}
	half, err = strconv.Atoi(c.Param("half"))
	if err != nil || (half != 1 && half != 2) {
		return 0, 0, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid half, must be 1 or 2")
	}
	return year, month, half, nil
}

// GetPeriods handles listing periods, newest first.
// @Summary     List periods
// @Description Get a paginated list of periods
// @Tags        periods
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 12, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Period] "Paginated periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods [get]
func (h *PeriodHandler) GetPeriods(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.periodService.ListPeriods(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCurrentPeriod handles fetching today's period with actuals.
// @Summary     Get the current period
// @Description Resolve today's half-month window and reconcile it
// @Tags        periods
// @Produce     json
// @Success     200 {object} map[string]services.PeriodWithActuals "Current period"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/current [get]
func (h *PeriodHandler) GetCurrentPeriod(c *gin.Context) {
	period, err := h.periodService.GetCurrentPeriod()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period})
}

// GetPeriod handles fetching one period with actuals, materializing the row
// on first access.
// @Summary     Get a period
// @Description Get a period by key with derived actuals and balances
// @Tags        periods
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Param       half  path int true "Half (1 or 2)"
// @Success     200 {object} map[string]services.PeriodWithActuals "Period"
// @Failure     400 {object} ErrorResponse "Invalid key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{year}/{month}/{half} [get]
func (h *PeriodHandler) GetPeriod(c *gin.Context) {
	year, month, half, err := parsePeriodKey(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := h.periodService.GetPeriodWithActuals(year, month, half)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period})
}

// UpdatePeriod handles updating a period's editable fields.
// @Summary     Update a period
// @Description Update starting balance, projections, or notes
// @Tags        periods
// @Accept      json
// @Produce     json
// @Param       id      path string              true "Period ID"
// @Param       request body UpdatePeriodRequest true "Fields to update"
// @Success     200 {object} map[string]models.Period "Period updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id} [put]
func (h *PeriodHandler) UpdatePeriod(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := h.periodService.UpdatePeriod(id, services.PeriodUpdate{
		StartingBalance:   req.StartingBalance,
		ProjectedIncome:   req.ProjectedIncome,
		ProjectedExpenses: req.ProjectedExpenses,
		Notes:             req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period})
}

// SetBudget handles upserting a category budget within a period.
// @Summary     Set a period budget
// @Description Upsert the budgeted amount for a category within a period
// @Tags        periods
// @Accept      json
// @Produce     json
// @Param       id      path string           true "Period ID"
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     200 {object} map[string]models.Budget "Budget set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Period or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /periods/{id}/budget [put]
func (h *PeriodHandler) SetBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.periodService.SetBudget(id, req.CategoryID, req.BudgetedAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}
