package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/services"
)

// RecurringHandler handles one family of recurring templates. The same
// handler serves bills, income sources, and investment contributions;
// the template type is fixed at construction and scopes every request.
type RecurringHandler struct {
	recurringService services.RecurringServicer
	templateType     models.TemplateType
}

// NewRecurringHandler creates a RecurringHandler scoped to one template type.
func NewRecurringHandler(recurringService services.RecurringServicer, templateType models.TemplateType) *RecurringHandler {
	return &RecurringHandler{recurringService: recurringService, templateType: templateType}
}

// CreateTemplateRequest represents the request payload for creating a
// recurring template.
type CreateTemplateRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=100"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Frequency   models.Frequency `json:"frequency" binding:"required,frequency"`
	NextDueDate string           `json:"next_due_date" binding:"required,datetime=2006-01-02"`
	CategoryID  string           `json:"category_id" binding:"required,uuid"`
	AccountID   string           `json:"account_id" binding:"required,uuid"`
	IsAutopay   bool             `json:"is_autopay"`
	Notes       string           `json:"notes" binding:"omitempty,max=500"`
}

// UpdateTemplateRequest represents the request payload for updating a
// recurring template.
type UpdateTemplateRequest struct {
	Name        *string           `json:"name" binding:"omitempty,min=1,max=100"`
	Amount      *decimal.Decimal  `json:"amount"`
	Frequency   *models.Frequency `json:"frequency" binding:"omitempty,frequency"`
	NextDueDate *string           `json:"next_due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *string           `json:"category_id" binding:"omitempty,uuid"`
	AccountID   *string           `json:"account_id" binding:"omitempty,uuid"`
	IsAutopay   *bool             `json:"is_autopay"`
	IsActive    *bool             `json:"is_active"`
	Notes       *string           `json:"notes" binding:"omitempty,max=500"`
}

// GenerateOccurrenceRequest carries an optional amount override for a
// generated occurrence. Only the magnitude is used; the sign follows the
// template type.
type GenerateOccurrenceRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}

// GetTemplates handles listing templates of this handler's type.
// @Summary     List recurring templates
// @Description Get all templates of one type ordered by next due date
// @Tags        recurring
// @Produce     json
// @Success     200 {object} map[string][]models.RecurringTemplate "Templates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [get]
// @Router      /income [get]
// @Router      /investments [get]
func (h *RecurringHandler) GetTemplates(c *gin.Context) {
	templates, err := h.recurringService.ListTemplates(h.templateType)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// GetTemplate handles fetching a single template.
// @Summary     Get a recurring template
// @Description Get a template by ID
// @Tags        recurring
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} map[string]models.RecurringTemplate "Template"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [get]
// @Router      /income/{id} [get]
// @Router      /investments/{id} [get]
func (h *RecurringHandler) GetTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	template, err := h.recurringService.GetTemplateByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": template})
}

// CreateTemplate handles the creation of a new template.
// @Summary     Create a recurring template
// @Description Create a new recurring template of this type
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       request body CreateTemplateRequest true "Template details"
// @Success     201 {object} map[string]models.RecurringTemplate "Template created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills [post]
// @Router      /income [post]
// @Router      /investments [post]
func (h *RecurringHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	nextDue, _ := time.ParseInLocation(dateLayout, req.NextDueDate, time.UTC)
	template, err := h.recurringService.CreateTemplate(h.templateType, services.TemplateInput{
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		NextDueDate: nextDue,
		CategoryID:  req.CategoryID,
		AccountID:   req.AccountID,
		IsAutopay:   req.IsAutopay,
		Notes:       req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// UpdateTemplate handles a partial template update.
// @Summary     Update a recurring template
// @Description Update fields on a recurring template
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Template ID"
// @Param       request body UpdateTemplateRequest true "Fields to update"
// @Success     200 {object} map[string]models.RecurringTemplate "Template updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [put]
// @Router      /income/{id} [put]
// @Router      /investments/{id} [put]
func (h *RecurringHandler) UpdateTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.TemplateUpdate{
		Name:       req.Name,
		Amount:     req.Amount,
		Frequency:  req.Frequency,
		CategoryID: req.CategoryID,
		AccountID:  req.AccountID,
		IsAutopay:  req.IsAutopay,
		IsActive:   req.IsActive,
		Notes:      req.Notes,
	}
	if req.NextDueDate != nil {
		nextDue, _ := time.ParseInLocation(dateLayout, *req.NextDueDate, time.UTC)
		update.NextDueDate = &nextDue
	}

	template, err := h.recurringService.UpdateTemplate(id, update)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": template})
}

// DeactivateTemplate handles retiring a template.
// @Summary     Deactivate a recurring template
// @Description Retire a template; its generated transactions keep their reference
// @Tags        recurring
// @Produce     json
// @Param       id path string true "Template ID"
// @Success     200 {object} map[string]string "Template deactivated"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/{id} [delete]
// @Router      /income/{id} [delete]
// @Router      /investments/{id} [delete]
func (h *RecurringHandler) DeactivateTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recurringService.DeactivateTemplate(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deactivated"})
}

// GenerateOccurrence handles recording an occurrence of a template: a bill
// payment, an income deposit, or an investment contribution. The generated
// transaction and the advanced due date commit together.
// @Summary     Record an occurrence
// @Description Generate the due transaction and advance the template's due date
// @Tags        recurring
// @Accept      json
// @Produce     json
// @Param       id      path string                    true  "Template ID"
// @Param       request body GenerateOccurrenceRequest false "Optional amount override"
// @Success     201 {object} map[string]models.Transaction "Occurrence recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Template not found"
// @Failure     500 {object} ErrorResponse "Occurrence failed and rolled back"
// @Router      /bills/{id}/mark-paid [post]
// @Router      /income/{id}/mark-received [post]
// @Router      /investments/{id}/mark-contributed [post]
func (h *RecurringHandler) GenerateOccurrence(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GenerateOccurrenceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	transaction, err := h.recurringService.GenerateOccurrence(id, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetGeneratedTransactions handles listing the transactions generated from
// this type's templates. Defaults to the current month when no window is
// given.
// @Summary     List generated transactions
// @Description Get transactions generated from templates of this type within a date window
// @Tags        recurring
// @Produce     json
// @Param       from query string false "Start date (YYYY-MM-DD)"
// @Param       to   query string false "End date (YYYY-MM-DD)"
// @Success     200 {object} map[string][]models.Transaction "Generated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /bills/payments [get]
// @Router      /income/deposits [get]
// @Router      /investments/contributions [get]
func (h *RecurringHandler) GetGeneratedTransactions(c *gin.Context) {
	fromPtr, err := parseDateQuery(c, "from")
	if err != nil {
		respondWithError(c, err)
		return
	}
	toPtr, err := parseDateQuery(c, "to")
	if err != nil {
		respondWithError(c, err)
		return
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	if fromPtr != nil {
		from = *fromPtr
	}
	if toPtr != nil {
		to = toPtr.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	transactions, err := h.recurringService.ListGeneratedTransactions(h.templateType, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
