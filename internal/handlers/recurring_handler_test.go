package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fortnight/internal/errors"
	"fortnight/internal/models"
	"fortnight/internal/services"
)

// --- mock recurring service ---

type mockRecurringService struct {
	listTemplatesFn             func(templateType models.TemplateType) ([]models.RecurringTemplate, error)
	getTemplateByIDFn           func(id string) (*models.RecurringTemplate, error)
	createTemplateFn            func(templateType models.TemplateType, input services.TemplateInput) (*models.RecurringTemplate, error)
	updateTemplateFn            func(id string, input services.TemplateUpdate) (*models.RecurringTemplate, error)
	deactivateTemplateFn        func(id string) error
	generateOccurrenceFn        func(id string, amountOverride *decimal.Decimal) (*models.Transaction, error)
	listGeneratedTransactionsFn func(templateType models.TemplateType, from, to time.Time) ([]models.Transaction, error)
}

func (m *mockRecurringService) ListTemplates(templateType models.TemplateType) ([]models.RecurringTemplate, error) {
	if m.listTemplatesFn != nil {
		return m.listTemplatesFn(templateType)
	}
	return []models.RecurringTemplate{}, nil
}

func (m *mockRecurringService) GetTemplateByID(id string) (*models.RecurringTemplate, error) {
	if m.getTemplateByIDFn != nil {
		return m.getTemplateByIDFn(id)
	}
	return &models.RecurringTemplate{}, nil
}

func (m *mockRecurringService) CreateTemplate(templateType models.TemplateType, input services.TemplateInput) (*models.RecurringTemplate, error) {
	if m.createTemplateFn != nil {
		return m.createTemplateFn(templateType, input)
	}
	return &models.RecurringTemplate{}, nil
}

func (m *mockRecurringService) UpdateTemplate(id string, input services.TemplateUpdate) (*models.RecurringTemplate, error) {
	if m.updateTemplateFn != nil {
		return m.updateTemplateFn(id, input)
	}
	return &models.RecurringTemplate{}, nil
}

func (m *mockRecurringService) DeactivateTemplate(id string) error {
	if m.deactivateTemplateFn != nil {
		return m.deactivateTemplateFn(id)
	}
	return nil
}

func (m *mockRecurringService) GenerateOccurrence(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	if m.generateOccurrenceFn != nil {
		return m.generateOccurrenceFn(id, amountOverride)
	}
	return &models.Transaction{}, nil
}

func (m *mockRecurringService) MarkPaid(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return m.GenerateOccurrence(id, amountOverride)
}

func (m *mockRecurringService) MarkReceived(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return m.GenerateOccurrence(id, amountOverride)
}

func (m *mockRecurringService) MarkContributed(id string, amountOverride *decimal.Decimal) (*models.Transaction, error) {
	return m.GenerateOccurrence(id, amountOverride)
}

func (m *mockRecurringService) ListGeneratedTransactions(templateType models.TemplateType, from, to time.Time) ([]models.Transaction, error) {
	if m.listGeneratedTransactionsFn != nil {
		return m.listGeneratedTransactionsFn(templateType, from, to)
	}
	return []models.Transaction{}, nil
}

var _ services.RecurringServicer = (*mockRecurringService)(nil)

func setupBillRouter(handler *RecurringHandler) *gin.Engine {
	r := gin.New()
	r.GET("/bills", handler.GetTemplates)
	r.GET("/bills/payments", handler.GetGeneratedTransactions)
	r.GET("/bills/:id", handler.GetTemplate)
	r.POST("/bills", handler.CreateTemplate)
	r.PUT("/bills/:id", handler.UpdateTemplate)
	r.DELETE("/bills/:id", handler.DeactivateTemplate)
	r.POST("/bills/:id/mark-paid", handler.GenerateOccurrence)
	return r
}

const (
	testTemplateID = "0195b2a6-3e0f-7cc1-a6e4-9d2f6b8c1a55"
	testAccountID  = "0195b2a6-3e0f-7cc1-a6e4-9d2f6b8c1a66"
	testCategoryID = "0195b2a6-3e0f-7cc1-a6e4-9d2f6b8c1a77"
)

func TestRecurringHandler_CreateTemplate(t *testing.T) {
	t.Run("returns 201 and scopes the type", func(t *testing.T) {
		svc := &mockRecurringService{
			createTemplateFn: func(templateType models.TemplateType, input services.TemplateInput) (*models.RecurringTemplate, error) {
				if templateType != models.TemplateTypeBill {
					t.Errorf("expected bill type, got %s", templateType)
				}
				if !input.NextDueDate.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("expected parsed due date, got %s", input.NextDueDate)
				}
				return &models.RecurringTemplate{
					Name:         input.Name,
					Amount:       input.Amount,
					Frequency:    input.Frequency,
					TemplateType: templateType,
					IsActive:     true,
				}, nil
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills",
			`{"name":"Rent","amount":"1791.67","frequency":"monthly","next_due_date":"2026-10-01",`+
				`"category_id":"`+testCategoryID+`","account_id":"`+testAccountID+`"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		template := result["template"].(map[string]interface{})
		if template["name"] != "Rent" {
			t.Errorf("expected name Rent, got %v", template["name"])
		}
	})

	t.Run("returns 400 for bad frequency", func(t *testing.T) {
		r := setupBillRouter(NewRecurringHandler(&mockRecurringService{}, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills",
			`{"name":"Rent","amount":"1791.67","frequency":"fortnightly","next_due_date":"2026-10-01",`+
				`"category_id":"`+testCategoryID+`","account_id":"`+testAccountID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 for bad date", func(t *testing.T) {
		r := setupBillRouter(NewRecurringHandler(&mockRecurringService{}, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills",
			`{"name":"Rent","amount":"1791.67","frequency":"monthly","next_due_date":"10/01/2026",`+
				`"category_id":"`+testCategoryID+`","account_id":"`+testAccountID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecurringHandler_GenerateOccurrence(t *testing.T) {
	t.Run("returns 201 without body", func(t *testing.T) {
		svc := &mockRecurringService{
			generateOccurrenceFn: func(id string, override *decimal.Decimal) (*models.Transaction, error) {
				if override != nil {
					t.Error("expected no override")
				}
				return &models.Transaction{
					Description: "Rent",
					Amount:      decimal.NewFromFloat(-1791.67),
				}, nil
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills/"+testTemplateID+"/mark-paid", "")

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		transaction := result["transaction"].(map[string]interface{})
		if transaction["amount"] != "-1791.67" {
			t.Errorf("expected amount -1791.67, got %v", transaction["amount"])
		}
	})

	t.Run("forwards amount override", func(t *testing.T) {
		var gotOverride *decimal.Decimal
		svc := &mockRecurringService{
			generateOccurrenceFn: func(id string, override *decimal.Decimal) (*models.Transaction, error) {
				gotOverride = override
				return &models.Transaction{}, nil
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills/"+testTemplateID+"/mark-paid", `{"amount":"133.25"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotOverride == nil || !gotOverride.Equal(decimal.NewFromFloat(133.25)) {
			t.Error("expected override forwarded to the service")
		}
	})

	t.Run("returns 404 for unknown template", func(t *testing.T) {
		svc := &mockRecurringService{
			generateOccurrenceFn: func(string, *decimal.Decimal) (*models.Transaction, error) {
				return nil, apperrors.ErrTemplateNotFound
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills/"+testTemplateID+"/mark-paid", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TEMPLATE_NOT_FOUND")
	})

	t.Run("returns 500 when the occurrence fails", func(t *testing.T) {
		svc := &mockRecurringService{
			generateOccurrenceFn: func(string, *decimal.Decimal) (*models.Transaction, error) {
				return nil, apperrors.ErrOccurrenceFailed
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "POST", "/bills/"+testTemplateID+"/mark-paid", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "OCCURRENCE_FAILED")
	})
}

func TestRecurringHandler_GetGeneratedTransactions(t *testing.T) {
	t.Run("passes the window through", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		svc := &mockRecurringService{
			listGeneratedTransactionsFn: func(templateType models.TemplateType, from, to time.Time) ([]models.Transaction, error) {
				gotFrom, gotTo = from, to
				return []models.Transaction{{Description: "Rent"}}, nil
			},
		}
		r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

		rec := doRequest(r, "GET", "/bills/payments?from=2026-03-01&to=2026-03-31", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !gotFrom.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected from %s", gotFrom)
		}
		// The end of the window covers the whole requested day.
		if gotTo.Before(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) {
			t.Errorf("unexpected to %s", gotTo)
		}
	})

	t.Run("returns 400 for bad date", func(t *testing.T) {
		r := setupBillRouter(NewRecurringHandler(&mockRecurringService{}, models.TemplateTypeBill))

		rec := doRequest(r, "GET", "/bills/payments?from=march", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecurringHandler_DeactivateTemplate(t *testing.T) {
	called := false
	svc := &mockRecurringService{
		deactivateTemplateFn: func(id string) error {
			called = true
			if id != testTemplateID {
				t.Errorf("unexpected id %s", id)
			}
			return nil
		},
	}
	r := setupBillRouter(NewRecurringHandler(svc, models.TemplateTypeBill))

	rec := doRequest(r, "DELETE", "/bills/"+testTemplateID, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !called {
		t.Error("expected the service to be called")
	}
}
