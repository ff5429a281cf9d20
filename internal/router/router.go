package router

import (
	"time"

	"shorelux/config"
	"shorelux/internal/handler"
	"shorelux/internal/ledger"
	"shorelux/internal/middleware"
	"shorelux/internal/repository"
	"shorelux/internal/service"
	"shorelux/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Ledger plumbing: one store, one projector, shared by every repository
	// that writes a ledgered record.
	ledgerRepo := repository.NewLedgerRepository(db)
	projector := ledger.NewProjector(ledgerRepo)
	backfiller := ledger.NewBackfiller(ledgerRepo, projector, ledgerRepo)

	// Repositories
	staffRepo := repository.NewStaffRepository(db)
	otpRepo := repository.NewOTPRepository(db)
	bookingTypeRepo := repository.NewBookingTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db, projector)
	incomeRepo := repository.NewIncomeRepository(db, projector)
	expenseRepo := repository.NewExpenseRepository(db, projector)
	voucherRepo := repository.NewVoucherRepository(db)
	stockRepo := repository.NewStockRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, staffRepo)
	otpSvc := service.NewOTPService(otpRepo, staffRepo, service.LogSender{}, cfg.OTP.TTL, cfg.OTP.EditWindow)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	staffHandler := handler.NewStaffHandler(authSvc, staffRepo)
	otpHandler := handler.NewOTPHandler(otpSvc)
	bookingTypeHandler := handler.NewBookingTypeHandler(bookingTypeRepo)
	bookingHandler := handler.NewBookingHandler(cfg, bookingRepo)
	incomeHandler := handler.NewIncomeHandler(incomeRepo, bookingRepo, otpSvc)
	expenseHandler := handler.NewExpenseHandler(expenseRepo, otpSvc)
	voucherHandler := handler.NewVoucherHandler(voucherRepo)
	stockHandler := handler.NewStockHandler(stockRepo)
	ledgerHandler := handler.NewLedgerHandler(ledgerRepo, backfiller)
	dashboardHandler := handler.NewDashboardHandler(cfg, dashboardRepo, bookingRepo, ledgerRepo)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired()

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// Website booking push: API key auth, no staff token.
		api.POST("/website/bookings", bookingHandler.WebsiteCreate)

		staff := api.Group("/staff")
		staff.Use(authMw, adminMw)
		{
			staff.POST("", staffHandler.Create)
			staff.GET("", staffHandler.List)
			staff.PUT("/:id", staffHandler.Update)
			staff.DELETE("/:id", staffHandler.Delete)
			staff.POST("/:id/enable-login", staffHandler.EnableLogin)
			staff.POST("/:id/disable-login", staffHandler.DisableLogin)
		}

		otp := api.Group("/otp")
		otp.Use(authMw)
		{
			otp.POST("/request", otpHandler.Request)
			otp.POST("/verify", otpHandler.Verify)
		}

		bookingTypes := api.Group("/booking-types")
		bookingTypes.Use(authMw)
		{
			bookingTypes.POST("", bookingTypeHandler.Create)
			bookingTypes.GET("", bookingTypeHandler.List)
			bookingTypes.PUT("/:id", bookingTypeHandler.Update)
			bookingTypes.DELETE("/:id", bookingTypeHandler.Delete)
		}

		bookings := api.Group("/bookings")
		bookings.Use(authMw)
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/next-invoice", bookingHandler.NextInvoiceNo)
			bookings.GET("/website", bookingHandler.WebsiteList)
			bookings.PUT("/:id", bookingHandler.Update)
			bookings.DELETE("/:id", bookingHandler.Delete)
		}

		incomes := api.Group("/incomes")
		incomes.Use(authMw)
		{
			incomes.GET("", incomeHandler.ListAll)
			incomes.POST("/sales", incomeHandler.CreateSales)
			incomes.GET("/sales", incomeHandler.ListSales)
			incomes.PUT("/sales/:id", incomeHandler.UpdateSales)
			incomes.DELETE("/sales/:id", incomeHandler.DeleteSales)
			incomes.POST("/other", incomeHandler.CreateOther)
			incomes.GET("/other", incomeHandler.ListOther)
			incomes.PUT("/other/:id", incomeHandler.UpdateOther)
			incomes.DELETE("/other/:id", incomeHandler.DeleteOther)
		}

		expenses := api.Group("/expenses")
		expenses.Use(authMw)
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		vouchers := api.Group("/vouchers")
		vouchers.Use(authMw)
		{
			vouchers.POST("", voucherHandler.Create)
			vouchers.GET("", voucherHandler.List)
			vouchers.GET("/next-no", voucherHandler.NextVoucherNo)
		}

		stock := api.Group("/stock")
		stock.Use(authMw)
		{
			stock.POST("/categories", stockHandler.CreateCategory)
			stock.GET("/categories", stockHandler.ListCategories)
			stock.DELETE("/categories/:id", stockHandler.DeleteCategory)
			stock.GET("/categories/:id/items", stockHandler.ListItemsByCategory)
			stock.POST("/items", stockHandler.CreateItem)
			stock.GET("/items", stockHandler.ListItems)
			stock.PUT("/items/:id", stockHandler.UpdateItem)
			stock.DELETE("/items/:id", stockHandler.DeleteItem)
			stock.POST("/cleaning", stockHandler.CreateCleaningLog)
			stock.GET("/cleaning", stockHandler.ListCleaningLogs)
			stock.POST("/laundry", stockHandler.CreateLaundryLog)
			stock.GET("/laundry", stockHandler.ListLaundryLogs)
			stock.PUT("/laundry/:id/received", stockHandler.UpdateLaundryReceived)
		}

		ledgerGroup := api.Group("/ledger")
		ledgerGroup.Use(authMw)
		{
			ledgerGroup.GET("/accounts/:account", ledgerHandler.Account)
			ledgerGroup.GET("/daybook", ledgerHandler.Daybook)
			ledgerGroup.GET("/monthly-summary", ledgerHandler.MonthlySummary)
			ledgerGroup.POST("/backfill", adminMw, ledgerHandler.Backfill)
		}

		dashboard := api.Group("/dashboard")
		dashboard.Use(authMw)
		{
			dashboard.GET("/summary", dashboardHandler.Summary)
			dashboard.GET("/monthly-trend", dashboardHandler.MonthlyTrend)
			dashboard.GET("/booking-progress", dashboardHandler.BookingProgress)
		}

		api.POST("/uploads/:kind", authMw, uploadHandler.Upload)
	}

	return r
}
