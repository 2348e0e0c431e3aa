package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medinatours/config"
	"medinatours/handlers"
)

// registerCatalogRoutes wires the shared CRUD surface of one catalog entity:
// public reads, admin-gated writes.
func registerCatalogRoutes(r *gin.Engine, path string, h *handlers.CatalogHandler, adminAuth gin.HandlerFunc) {
	api := r.Group(path)
	{
		api.GET("", h.List)
		api.GET("/:id", h.Get)

		protected := api.Group("")
		protected.Use(adminAuth)
		protected.POST("", h.Create)
		protected.PUT("/:id", h.Update)
		protected.DELETE("/:id", h.Delete)
	}
}

// RegisterAvailabilityRoutes registers slot endpoints. The whole surface is
// public, matching the deployed frontend's calls.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.Availability.GetAll)
		api.GET("/type/:type", hb.Availability.GetByType)
		api.GET("/upcoming", hb.Availability.GetUpcoming)
		api.POST("", hb.Availability.Add)
		api.PUT("/:id", hb.Availability.Update)
		api.DELETE("/:id", hb.Availability.Delete)
		api.POST("/:id/book", hb.Availability.Book)
	}
}

// RegisterCoachingRoutes registers coaching session endpoints.
func RegisterCoachingRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api/coaching")
	{
		api.GET("/sessions", hb.Coaching.List)
		api.POST("/book", hb.Coaching.Book)

		protected := api.Group("")
		protected.Use(hb.AdminAuth)
		protected.POST("/sessions", hb.Coaching.Create)
	}
}

// RegisterNewsletterRoutes registers subscription and bulk-send endpoints.
func RegisterNewsletterRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api/newsletter")
	{
		api.POST("/subscribe", hb.Newsletter.Subscribe)

		protected := api.Group("")
		protected.Use(hb.AdminAuth)
		protected.POST("/send-newsletter", hb.Newsletter.Send)
	}
}

// RegisterPaymentRoutes registers payment initiation and the gateway webhook.
// The path segment keeps the spelling the deployed frontend already calls.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api/payement")
	{
		api.POST("/create-payment", hb.Payment.Create)
		api.GET("/webhook", hb.Payment.Webhook)
	}
}

// RegisterAdminRoutes registers the admin login endpoint.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.Bundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.Bundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerCatalogRoutes(r, "/api/events", hb.Events, hb.AdminAuth)
	registerCatalogRoutes(r, "/api/articles", hb.Articles, hb.AdminAuth)
	registerCatalogRoutes(r, "/api/members", hb.Members, hb.AdminAuth)
	registerCatalogRoutes(r, "/api/merchandise", hb.Merchandise, hb.AdminAuth)
	registerCatalogRoutes(r, "/api/private-tours", hb.PrivateTours, hb.AdminAuth)

	RegisterAvailabilityRoutes(r, hb)
	RegisterCoachingRoutes(r, hb)
	RegisterNewsletterRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
