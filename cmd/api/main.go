package main

import (
	"fmt"
	"fortnight/internal/config"
	"fortnight/internal/database"
	"fortnight/internal/handlers"
	"fortnight/internal/logger"
	"fortnight/internal/middleware"
	"fortnight/internal/models"
	"fortnight/internal/services"
	"fortnight/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fortnight/internal/docs" // Import swagger docs
)

// @title           Fortnight API
// @version         1.0
// @description     Fortnight is a personal finance tracker built around half-month budgeting periods, recurring bills and income, and asset tracking.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	transactionService := services.NewTransactionService(db)
	recurringService := services.NewRecurringService(db)
	periodService := services.NewPeriodService(db)
	assetService := services.NewAssetService(db)
	reportService := services.NewReportService(db)
	dashboardService := services.NewDashboardService(db, periodService, assetService)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	billHandler := handlers.NewRecurringHandler(recurringService, models.TemplateTypeBill)
	incomeHandler := handlers.NewRecurringHandler(recurringService, models.TemplateTypeIncome)
	investmentHandler := handlers.NewRecurringHandler(recurringService, models.TemplateTypeInvestment)
	periodHandler := handlers.NewPeriodHandler(periodService)
	assetHandler := handlers.NewAssetHandler(assetService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", appConfig.AllowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.GET("", accountHandler.GetAccounts)
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.PUT("/:id/toggle", accountHandler.ToggleAccount)

	// Category routes
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.PUT("/:id/category", transactionHandler.RecategorizeTransaction)

	// Bill routes
	bills := v1.Group("/bills")
	bills.GET("", billHandler.GetTemplates)
	bills.POST("", billHandler.CreateTemplate)
	bills.GET("/payments", billHandler.GetGeneratedTransactions)
	bills.GET("/:id", billHandler.GetTemplate)
	bills.PUT("/:id", billHandler.UpdateTemplate)
	bills.DELETE("/:id", billHandler.DeactivateTemplate)
	bills.POST("/:id/mark-paid", billHandler.GenerateOccurrence)

	// Income routes
	income := v1.Group("/income")
	income.GET("", incomeHandler.GetTemplates)
	income.POST("", incomeHandler.CreateTemplate)
	income.GET("/deposits", incomeHandler.GetGeneratedTransactions)
	income.GET("/:id", incomeHandler.GetTemplate)
	income.PUT("/:id", incomeHandler.UpdateTemplate)
	income.DELETE("/:id", incomeHandler.DeactivateTemplate)
	income.POST("/:id/mark-received", incomeHandler.GenerateOccurrence)

	// Investment routes
	investments := v1.Group("/investments")
	investments.GET("", investmentHandler.GetTemplates)
	investments.POST("", investmentHandler.CreateTemplate)
	investments.GET("/contributions", investmentHandler.GetGeneratedTransactions)
	investments.GET("/:id", investmentHandler.GetTemplate)
	investments.PUT("/:id", investmentHandler.UpdateTemplate)
	investments.DELETE("/:id", investmentHandler.DeactivateTemplate)
	investments.POST("/:id/mark-contributed", investmentHandler.GenerateOccurrence)

	// Period routes
	periods := v1.Group("/periods")
	periods.GET("", periodHandler.GetPeriods)
	periods.GET("/current", periodHandler.GetCurrentPeriod)
	periods.GET("/:year/:month/:half", periodHandler.GetPeriod)
	periods.PUT("/:id", periodHandler.UpdatePeriod)
	periods.PUT("/:id/budget", periodHandler.SetBudget)

	// Asset routes
	assets := v1.Group("/assets")
	assets.GET("/accounts", assetHandler.GetAssetAccounts)
	assets.POST("/snapshots", assetHandler.CreateSnapshot)
	assets.GET("/history", assetHandler.GetHistory)
	assets.GET("/net-worth", assetHandler.GetNetWorth)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/monthly-summary", reportHandler.GetMonthlySummary)
	reports.GET("/category-spending", reportHandler.GetCategorySpending)
	reports.GET("/top-merchants", reportHandler.GetTopMerchants)
	reports.GET("/net-worth-history", reportHandler.GetNetWorthHistory)

	// Dashboard route
	v1.GET("/dashboard", dashboardHandler.GetDashboard)

	log.Infof("Starting Fortnight backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
