package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/buxdao/holder-bot/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// A user token may only act on its own subject; API keys may act on anyone
		users := v1.Group("/users/:user_id", middleware.Auth(authCfg), middleware.RequireSelf("user_id"))
		users.GET("/holdings", handler.GetHoldings)
		users.POST("/refresh", handler.RefreshUser)
		users.POST("/wallets", handler.LinkWallet)
		users.DELETE("/wallets/:wallet", handler.UnlinkWallet)

		admin := v1.Group("/admin", middleware.APIKeyAuth(authCfg))
		admin.POST("/hashlists/reload", handler.ReloadHashlists)
	}
}
