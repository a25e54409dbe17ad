package routes

import (
	"net/http"
	"time"

	"grindsphere/handlers"
	"grindsphere/middleware"
	"grindsphere/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup/login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers profile, favorites and browse-category
// endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users/me")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.GetProfileHandler)
		api.PUT("/profile-pic", hb.UploadProfilePicHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)

		api.POST("/favorites/:id", hb.ToggleFavoriteHandler)
		api.GET("/favorites", hb.ListFavoritesHandler)

		api.PUT("/browse/category", hb.SetBrowseCategoryHandler)
		api.GET("/browse/category", hb.GetBrowseCategoryHandler)
		api.DELETE("/browse/category", hb.ClearBrowseCategoryHandler)
	}
}

// RegisterCatalogRoutes registers service listing, detail and publishing
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/top", hb.TopServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)
		api.POST("/:id/reviews", hb.AddReviewHandler)

		hustler := api.Group("")
		hustler.Use(middleware.RequireRole(models.RoleHustler))
		hustler.GET("/mine", hb.MyServicesHandler)
		hustler.GET("/mine/dashboard", hb.DashboardHandler)
		hustler.POST("", hb.SaveServiceHandler)
		hustler.PUT("/:id", hb.SaveServiceHandler)
		hustler.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking-request lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRole(models.RoleCustomer), hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.PATCH("/:id/status", middleware.RequireRole(models.RoleHustler), hb.UpdateBookingStatusHandler)
	}
}

// RegisterChatRoutes registers messaging endpoints, including the websocket
// stream.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("/messages", hb.SendMessageHandler)
		api.GET("/conversations", hb.InboxHandler)
		api.GET("/conversations/:id/messages", hb.HistoryHandler)
		api.GET("/ws", hb.StreamHandler)
	}
}

// RegisterStorageRoutes registers generic upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("/upload/:bucket", hb.UploadFileHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
