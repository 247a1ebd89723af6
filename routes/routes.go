package routes

import (
	"github.com/gin-gonic/gin"

	"bizworth/backend/benchmark"
	"bizworth/backend/config"
	"bizworth/backend/controllers"
	"bizworth/backend/middlewares"
	"bizworth/backend/storage"
)

func Register(r *gin.Engine, cfg config.Config, st storage.Store, hub *benchmark.Hub) {
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/signup", controllers.Signup(cfg, st))
		auth.POST("/login", controllers.Login(cfg, st))
		// legacy aliases kept for older clients
		api.POST("/register", controllers.Signup(cfg, st))
		api.POST("/login", controllers.Login(cfg, st))
		api.POST("/logout", controllers.Logout())

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("user", controllers.Me(st))

		priv.POST("companies", controllers.CreateCompany(st))
		priv.GET("users/:userId/companies", controllers.GetUserCompanies(st))

		priv.POST("financials", controllers.CreateFinancial(st))
		priv.POST("employees", controllers.CreateEmployee(st))
		priv.POST("technology", controllers.CreateTechnology(st))
		priv.POST("owner-intent", controllers.CreateOwnerIntent(st))
		priv.POST("valuations", controllers.CreateValuation(st))
		priv.POST("documents", controllers.UploadDocument(cfg, st))

		co := priv.Group("companies/:id")
		co.GET("", controllers.GetCompany(st))
		co.GET("/financials", controllers.GetCompanyFinancials(st))
		co.GET("/employees", controllers.GetCompanyEmployees(st))
		co.GET("/technology", controllers.GetCompanyTechnology(st))
		co.GET("/owner-intent", controllers.GetCompanyOwnerIntent(st))
		co.GET("/documents", controllers.GetCompanyDocuments(st))
		co.GET("/valuations", controllers.GetCompanyValuation(st))
		co.GET("/recommendations", controllers.GetCompanyRecommendations(st))
		co.GET("/buyer-matches", controllers.GetCompanyBuyerMatches(st))
		co.POST("/generate-valuation", controllers.GenerateValuation(st))
		co.GET("/report.csv", controllers.ExportReportCSV(st))
		co.GET("/report.xlsx", controllers.ExportReportXLSX(st))

		priv.POST("ai/analyze-company", controllers.AnalyzeCompany(cfg, st))
		priv.POST("ai/market-analysis", controllers.MarketAnalysis(cfg))
		priv.POST("chat/completions", controllers.ChatCompletions(cfg))
	}

	r.GET("/ws", gin.WrapF(hub.Serve))
}
