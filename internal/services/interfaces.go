package services

import (
	"time"

	"github.com/shopspring/decimal"

	"fortnight/internal/models"
	"fortnight/internal/pagination"
)

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	ListAccounts() ([]models.Account, error)
	GetAccountByID(id string) (*models.Account, error)
	CreateAccount(input AccountInput) (*models.Account, error)
	UpdateAccount(id string, input AccountUpdate) (*models.Account, error)
	DeleteAccount(id string) error
	ToggleActive(id string) (*models.Account, error)
}

// AccountInput holds the fields for creating an account.
type AccountInput struct {
	Name        string
	Type        models.AccountType
	Institution string
	LastFour    string
	Balance     decimal.Decimal
	IsTaxable   *bool
}

// AccountUpdate holds optional fields for a partial account update.
type AccountUpdate struct {
	Name        *string
	Type        *models.AccountType
	Institution *string
	LastFour    *string
	Balance     *decimal.Decimal
	IsTaxable   *bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	CreateCategory(input CategoryInput) (*models.Category, error)
	UpdateCategory(id string, input CategoryUpdate) (*models.Category, error)
	DeleteCategory(id string) error
}

// CategoryInput holds the fields for creating a category.
type CategoryInput struct {
	Name      string
	Type      models.CategoryType
	Color     string
	Icon      string
	SortOrder int
}

// CategoryUpdate holds optional fields for a partial category update.
type CategoryUpdate struct {
	Name      *string
	Color     *string
	Icon      *string
	SortOrder *int
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	From       *time.Time
	To         *time.Time
	CategoryID *string
	AccountID  *string
}

// TransactionInput holds the fields for creating a transaction.
type TransactionInput struct {
	Description string
	Merchant    string
	Amount      decimal.Decimal
	Date        time.Time
	AccountID   string
	CategoryID  string
	Notes       string
}

// TransactionUpdate holds optional fields for a partial transaction update.
type TransactionUpdate struct {
	Description *string
	Merchant    *string
	Amount      *decimal.Decimal
	Date        *time.Time
	AccountID   *string
	CategoryID  *string
	Notes       *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(page pagination.PageRequest, filter TransactionFilter, sortField, sortOrder string) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(id string, input TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id string) error
	Recategorize(id, categoryID string) (*models.Transaction, error)
}

// TemplateInput holds the fields for creating a recurring template.
type TemplateInput struct {
	Name        string
	Amount      decimal.Decimal
	Frequency   models.Frequency
	NextDueDate time.Time
	CategoryID  string
	AccountID   string
	IsAutopay   bool
	Notes       string
}

// TemplateUpdate holds optional fields for a partial template update.
type TemplateUpdate struct {
	Name        *string
	Amount      *decimal.Decimal
	Frequency   *models.Frequency
	NextDueDate *time.Time
	CategoryID  *string
	AccountID   *string
	IsAutopay   *bool
	IsActive    *bool
	Notes       *string
}

// RecurringServicer defines the contract for recurring templates: CRUD plus
// turning a due template into a concrete ledger transaction.
type RecurringServicer interface {
	ListTemplates(templateType models.TemplateType) ([]models.RecurringTemplate, error)
	GetTemplateByID(id string) (*models.RecurringTemplate, error)
	CreateTemplate(templateType models.TemplateType, input TemplateInput) (*models.RecurringTemplate, error)
	UpdateTemplate(id string, input TemplateUpdate) (*models.RecurringTemplate, error)
	DeactivateTemplate(id string) error
	GenerateOccurrence(id string, amountOverride *decimal.Decimal) (*models.Transaction, error)
	MarkPaid(id string, amountOverride *decimal.Decimal) (*models.Transaction, error)
	MarkReceived(id string, amountOverride *decimal.Decimal) (*models.Transaction, error)
	MarkContributed(id string, amountOverride *decimal.Decimal) (*models.Transaction, error)
	ListGeneratedTransactions(templateType models.TemplateType, from, to time.Time) ([]models.Transaction, error)
}

// PeriodActuals holds cash-flow totals derived from the transactions that
// fall inside a period's date range.
type PeriodActuals struct {
	ActualIncome    decimal.Decimal      `json:"actual_income"`
	ActualExpenses  decimal.Decimal      `json:"actual_expenses"`
	ActualTransfers decimal.Decimal      `json:"actual_transfers"`
	Transactions    []models.Transaction `json:"transactions"`
}

// PeriodWithActuals combines a stored period with freshly derived actuals
// and the balances computed from them.
type PeriodWithActuals struct {
	models.Period
	PeriodActuals
	EndingBalance          decimal.Decimal `json:"ending_balance"`
	ProjectedEndingBalance decimal.Decimal `json:"projected_ending_balance"`
}

// PeriodUpdate holds the only period fields a caller may change; actuals
// are derived and never written.
type PeriodUpdate struct {
	StartingBalance   *decimal.Decimal
	ProjectedIncome   *decimal.Decimal
	ProjectedExpenses *decimal.Decimal
	Notes             *string
}

// PeriodServicer defines the contract for half-month periods and their budgets.
type PeriodServicer interface {
	GetOrCreatePeriod(year, month, half int) (*models.Period, error)
	ComputeActuals(year, month, half int) (*PeriodActuals, error)
	GetPeriodWithActuals(year, month, half int) (*PeriodWithActuals, error)
	GetCurrentPeriod() (*PeriodWithActuals, error)
	ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.Period], error)
	UpdatePeriod(id string, update PeriodUpdate) (*models.Period, error)
	SetBudget(periodID, categoryID string, budgetedAmount decimal.Decimal) (*models.Budget, error)
}

// NetWorth is the asset/liability split across active accounts.
type NetWorth struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"net_worth"`
}

// AssetServicer defines the contract for asset snapshots and net worth.
type AssetServicer interface {
	ListAssetAccounts() ([]models.Account, error)
	CreateSnapshot(accountID string, date time.Time, balance decimal.Decimal, costBasis decimal.Decimal) (*models.AssetSnapshot, error)
	GetHistory(accountID *string, months int) ([]models.AssetSnapshot, error)
	GetNetWorth() (*NetWorth, error)
}

// MonthlySummary is one month of income vs expenses.
type MonthlySummary struct {
	Month       string          `json:"month"`
	Label       string          `json:"label"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Net         decimal.Decimal `json:"net"`
	SavingsRate float64         `json:"savings_rate"`
}

// CategorySpending is aggregate expense spending for one category.
type CategorySpending struct {
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	Percentage   float64         `json:"percentage"`
	Color        string          `json:"color"`
	Transactions int             `json:"transactions"`
}

// MerchantSpending is aggregate expense spending for one merchant.
type MerchantSpending struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Transactions int             `json:"transactions"`
	Category     string          `json:"category"`
}

// NetWorthPoint is one month of snapshot-derived net worth.
type NetWorthPoint struct {
	Month       string          `json:"month"`
	Label       string          `json:"label"`
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	NetWorth    decimal.Decimal `json:"net_worth"`
}

// ReportServicer defines the contract for read-only reporting queries.
type ReportServicer interface {
	MonthlySummary(months int) ([]MonthlySummary, error)
	CategorySpending(from, to *time.Time) ([]CategorySpending, error)
	TopMerchants(limit int, from, to *time.Time) ([]MerchantSpending, error)
	NetWorthHistory(months int) ([]NetWorthPoint, error)
}

// DashboardMetrics is the headline figures for the current period.
type DashboardMetrics struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashFlow  decimal.Decimal `json:"net_cash_flow"`
}

// CategorySlice is one slice of the current period's spending breakdown.
type CategorySlice struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

// Dashboard is the aggregate view served to the landing page.
type Dashboard struct {
	PeriodMetrics      DashboardMetrics           `json:"period_metrics"`
	Accounts           []models.Account           `json:"accounts"`
	RecentTransactions []models.Transaction       `json:"recent_transactions"`
	UpcomingBills      []models.RecurringTemplate `json:"upcoming_bills"`
	NetWorth           *NetWorth                  `json:"net_worth"`
	SpendingByCategory []CategorySlice            `json:"spending_by_category"`
}

// DashboardServicer defines the contract for the dashboard aggregate.
type DashboardServicer interface {
	GetDashboard() (*Dashboard, error)
}
