package routes

import (
	"contract-docgen/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Contract document rendering engine is running",
			})
		})

		// Document rendering
		render := v1.Group("/render")
		{
			render.POST("/contract", controllers.RenderContract)
			render.POST("/catalogue", controllers.RenderCatalogue)
		}

		// Template tooling
		templates := v1.Group("/templates")
		{
			templates.POST("/convert", controllers.ConvertTemplate)
			templates.GET("/placeholders", controllers.GetTemplatePlaceholders)
		}

		// Context-building helpers for the contract workflow
		context := v1.Group("/context")
		{
			context.POST("/money", controllers.BuildMoneyContext)
			context.POST("/contact", controllers.NormalizeContact)
			context.POST("/channel", controllers.NormalizeChannel)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Route not found"})
	})
}
