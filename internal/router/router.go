package router

import (
	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/governance"
	"github.com/chokiwild/ChainFund-Dapp/internal/handler"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/gin-gonic/gin"
)

// Setup wires the HTTP routes over the session components.
func Setup(coord *coordinator.Coordinator, gov *governance.Governance, store *session.Store, factory *session.FactoryPointer) *gin.Engine {
	r := gin.Default()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "chainfund-client",
		})
	})

	v1 := r.Group("/api/v1")
	{
		sessionHandler := handler.NewSessionHandler(coord, store, factory)
		v1.POST("/session/connect", sessionHandler.Connect)
		v1.GET("/session", sessionHandler.GetSession)

		campaignHandler := handler.NewCampaignHandler(coord, store)
		campaigns := v1.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.POST("", campaignHandler.CreateCampaign)
			campaigns.POST("/:id/contribute", campaignHandler.Contribute)
			campaigns.POST("/:id/withdraw", campaignHandler.Withdraw)
			campaigns.POST("/:id/refund", campaignHandler.Refund)
			campaigns.POST("/:id/claim-refund", campaignHandler.ClaimRefund)
		}

		adminHandler := handler.NewAdminHandler(gov, store, factory)
		admin := v1.Group("/admin")
		{
			admin.GET("", adminHandler.GetAdminInfo)
			admin.POST("/minter", adminHandler.SetMinter)
			admin.POST("/factory/redeploy", adminHandler.RedeployFactory)
		}
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
