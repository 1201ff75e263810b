package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/services"
)

// ReportHandler handles read-only reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySummary handles the per-month income/expense report.
// @Summary     Monthly summary
// @Description Get income, expenses, net, and savings rate per month
// @Tags        reports
// @Produce     json
// @Param       months query int false "Months of history (default 12)"
// @Success     200 {object} map[string][]services.MonthlySummary "Monthly summaries"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly-summary [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	months, err := parseMonthsQuery(c, 12)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summaries, err := h.reportService.MonthlySummary(months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// GetCategorySpending handles the spending-by-category report.
// @Summary     Category spending
// @Description Get expense totals per category with shares, largest first
// @Tags        reports
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to   query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} map[string][]services.CategorySpending "Category spending"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/category-spending [get]
func (h *ReportHandler) GetCategorySpending(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	spending, err := h.reportService.CategorySpending(from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": spending})
}

// GetTopMerchants handles the biggest-merchants report.
// @Summary     Top merchants
// @Description Get the merchants with the highest expense totals
// @Tags        reports
// @Produce     json
// @Param       limit query int    false "Number of merchants (default 10)"
// @Param       from  query string false "Start date (YYYY-MM-DD)"
// @Param       to    query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} map[string][]services.MerchantSpending "Top merchants"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/top-merchants [get]
func (h *ReportHandler) GetTopMerchants(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 100 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid limit, expected 1-100"))
			return
		}
		limit = parsed
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	merchants, err := h.reportService.TopMerchants(limit, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"merchants": merchants})
}

// GetNetWorthHistory handles the snapshot-derived net worth report.
// @Summary     Net worth history
// @Description Get per-month net worth built from asset snapshots
// @Tags        reports
// @Produce     json
// @Param       months query int false "Months of history (default 12)"
// @Success     200 {object} map[string][]services.NetWorthPoint "Net worth history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/net-worth-history [get]
func (h *ReportHandler) GetNetWorthHistory(c *gin.Context) {
	months, err := parseMonthsQuery(c, 12)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.reportService.NetWorthHistory(months)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": points})
}
