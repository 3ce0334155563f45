package routes

import (
	"github.com/PelvK/club-sarmiento-management-sub001/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine) {
	// Initialize handlers
	handlers.InitHandlers()

	// API v1 routes, behind the caller-identity middleware
	v1 := router.Group("/api/v1")
	v1.Use(handlers.IdentityMiddleware())
	{
		// Member endpoints
		v1.POST("/members/create", handlers.CreateMember)
		v1.GET("/members", handlers.ListMembers)
		v1.GET("/members/:id", handlers.GetMember)
		v1.POST("/members/update", handlers.UpdateMember)
		v1.POST("/members/toggleActive", handlers.ToggleMemberActive)

		// Sport selection endpoints
		v1.POST("/members/selectSport", handlers.SelectSport)
		v1.POST("/members/setPrincipalSport", handlers.SetPrincipalSport)
		v1.POST("/members/setQuote", handlers.SetQuoteForSport)

		// Payment endpoints
		v1.POST("/payments/listByMember", handlers.ListMemberPayments)
		v1.POST("/payments/record", handlers.RecordPayment)
		v1.POST("/payments/cancel", handlers.CancelPayment)
		v1.POST("/payments/summary", handlers.MemberPaymentSummary)
		v1.POST("/payments/generateDues", handlers.GenerateMonthlyDues)

		// Catalog endpoints
		v1.GET("/sports", handlers.ListSports)
		v1.GET("/sports/societaryQuotes", handlers.ListSocietaryQuotes)

		// Report endpoint
		v1.GET("/reports/dues", handlers.ExportDuesReport)
	}
}
