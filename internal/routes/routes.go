package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daonlab/crm-calendar-backend/internal/handler"
	"github.com/daonlab/crm-calendar-backend/internal/middleware"
	"github.com/daonlab/crm-calendar-backend/pkg/jwt"
)

// Setup configures all API routes.
// Reads are public (OptionalAuth only attaches the caller identity for the
// request log); every write runs behind RequireAuth, which rejects
// unauthenticated callers before any validation or store access.
func Setup(
	router *gin.Engine,
	campaignHandler *handler.CampaignHandler,
	authHandler *handler.AuthHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", middleware.RequireAuth(jwtManager), authHandler.Me)

	campaigns := api.Group("/campaigns")
	campaigns.GET("", middleware.OptionalAuth(jwtManager), campaignHandler.List)
	campaigns.GET("/:id", middleware.OptionalAuth(jwtManager), campaignHandler.Get)
	campaigns.POST("", middleware.RequireAuth(jwtManager), campaignHandler.Create)
	campaigns.PUT("/:id", middleware.RequireAuth(jwtManager), campaignHandler.Update)
	campaigns.DELETE("/:id", middleware.RequireAuth(jwtManager), campaignHandler.Delete)
	campaigns.POST("/:id/copy", middleware.RequireAuth(jwtManager), campaignHandler.Copy)

	api.GET("/calendar", middleware.OptionalAuth(jwtManager), campaignHandler.MonthView)
	api.GET("/meta", campaignHandler.Meta)
}
