package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/madinatul-uloom/madrasah-admin-api/api/swagger"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/catalog"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/handler"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/middleware"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/repository"
	"github.com/madinatul-uloom/madrasah-admin-api/internal/service"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/cache"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/config"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/database"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/logger"
	corsmiddleware "github.com/madinatul-uloom/madrasah-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/madinatul-uloom/madrasah-admin-api/pkg/middleware/requestid"
	"github.com/madinatul-uloom/madrasah-admin-api/pkg/response"
)

// @title Madrasah Admin API
// @version 0.1.0
// @description Back office and public API for the madrasah institutional site
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	resultRepo := repository.NewResultRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	incomeRepo := repository.NewIncomeRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	var credentials service.CredentialStore = userRepo
	if cfg.Auth.StaticCredentials {
		logr.Warn("using static development credentials")
		credentials = catalog.NewStaticCredentials()
	}

	metricsSvc := service.NewMetricsService()
	accessSvc := service.NewAccessService()
	authSvc := service.NewAuthService(credentials, cfg.JWT, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	subjectSvc := service.NewSubjectService(subjectRepo, validate, logr)
	resultSvc := service.NewResultService(resultRepo, studentRepo, validate, logr)
	donationSvc := service.NewDonationService(donationRepo, incomeRepo, validate, logr).WithMetrics(metricsSvc)
	accountsSvc := service.NewAccountsService(incomeRepo, expenseRepo, donationRepo, validate, logr)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, validate, logr)
	inspirationSvc := service.NewInspirationService(
		service.NewHTTPInspirationProvider(cfg.Inspiration),
		redisClient, cfg.Inspiration.CacheTTL, logr,
	).WithMetrics(metricsSvc)
	dashboardSvc := service.NewDashboardService(
		studentRepo, resultRepo, feedbackRepo, donationRepo,
		incomeRepo, expenseRepo, redisClient, cfg.Dashboard.CacheTTL, logr,
	)

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := subjectSvc.Seed(startupCtx); err != nil {
		logr.Sugar().Fatalw("failed to seed subjects", "error", err)
	}
	// Heal the ledger in case a previous run stopped between a donation write
	// and its projection.
	if err := donationSvc.Resync(startupCtx); err != nil {
		logr.Sugar().Fatalw("failed to resync income ledger", "error", err)
	}

	authHandler := handler.NewAuthHandler(authSvc)
	navigationHandler := handler.NewNavigationHandler(accessSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	subjectHandler := handler.NewSubjectHandler(subjectSvc)
	resultHandler := handler.NewResultHandler(resultSvc, subjectSvc)
	donationHandler := handler.NewDonationHandler(donationSvc)
	accountsHandler := handler.NewAccountsHandler(accountsSvc)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc)
	contentHandler := handler.NewContentHandler(inspirationSvc, dashboardSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	public := api.Group("/public")
	{
		public.GET("/institution", contentHandler.Institution)
		public.GET("/teachers", contentHandler.Teachers)
		public.GET("/staff", contentHandler.Staff)
		public.GET("/notices", contentHandler.Notices)
		public.GET("/gallery", contentHandler.Gallery)
		public.GET("/inspiration", contentHandler.Inspiration)
		public.POST("/visit", contentHandler.Visit)
		public.GET("/results/lookup", resultHandler.Lookup)
		public.POST("/feedback", feedbackHandler.Submit)
	}

	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.POST("/auth/logout", authHandler.Logout)
		authed.GET("/navigation/sections", navigationHandler.Sections)

		dashboard := authed.Group("/dashboard", middleware.RequireSection(accessSvc, models.SectionDashboard))
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
		}

		students := authed.Group("/students", middleware.RequireSection(accessSvc, models.SectionStudents))
		{
			students.GET("", studentHandler.List)
			students.POST("", studentHandler.Create)
			students.GET("/:id", studentHandler.Get)
			students.PUT("/:id", studentHandler.Update)
			students.DELETE("/:id", studentHandler.Delete)
		}

		results := authed.Group("/results", middleware.RequireSection(accessSvc, models.SectionResults))
		{
			results.GET("", resultHandler.List)
			results.POST("", resultHandler.Create)
			results.PUT("/:id", resultHandler.Update)
			results.DELETE("/:id", resultHandler.Delete)
			results.GET("/:id/marksheet", resultHandler.Marksheet)
		}
		authed.GET("/subjects", middleware.RequireSection(accessSvc, models.SectionResults), subjectHandler.List)
		authed.POST("/subjects", middleware.RequireSection(accessSvc, models.SectionResults), subjectHandler.Create)

		donations := authed.Group("/donations", middleware.RequireSection(accessSvc, models.SectionDonations))
		{
			donations.GET("", donationHandler.List)
			donations.POST("", donationHandler.Create)
			donations.DELETE("/:id", donationHandler.Delete)
			donations.GET("/export", donationHandler.ExportCSV)
		}

		accounts := authed.Group("/accounts", middleware.RequireSection(accessSvc, models.SectionAccounts))
		{
			accounts.GET("/incomes", accountsHandler.ListIncomes)
			accounts.POST("/incomes", accountsHandler.CreateIncome)
			accounts.DELETE("/incomes/:id", accountsHandler.DeleteIncome)
			accounts.GET("/expenses", accountsHandler.ListExpenses)
			accounts.POST("/expenses", accountsHandler.CreateExpense)
			accounts.DELETE("/expenses/:id", accountsHandler.DeleteExpense)
			accounts.GET("/summary", accountsHandler.Summary)
			accounts.GET("/statement", accountsHandler.ExportStatement)
		}

		authed.GET("/feedback", middleware.RequireSection(accessSvc, models.SectionFeedback), feedbackHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
