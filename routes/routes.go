package routes

import (
	"net/http"
	"time"

	"verdanta/handlers"
	"verdanta/middleware"
	"verdanta/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the public content endpoints.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pages")
	{
		api.GET("/home", hb.HomePageHandler)
		api.GET("/about", hb.AboutPageHandler)
		api.GET("/products", hb.ProductsPageHandler)
		api.GET("/careers", hb.CareersPageHandler)
		api.GET("/team", hb.TeamPageHandler)
		api.GET("/ecovillage", hb.EcovillagePageHandler)
		api.GET("/investors", hb.InvestorsPageHandler)
		api.GET("/contact", hb.ContactPageHandler)
	}
	r.GET("/api/footer", hb.FooterHandler)
}

// RegisterContactRoutes registers the contact-form submission endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("/messages", hb.SubmitMessageHandler)
	}
}

// RegisterAdminRoutes sets up the token-protected message inbox.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/messages", hb.AdminHandler.ListMessagesHandler)
		adminGroup.PATCH("/messages/:id/read", hb.AdminHandler.MarkMessageReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
